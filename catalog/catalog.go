package catalog

import (
	"context"

	"github.com/fwojciec/orgdocs"
)

var (
	_ orgdocs.Catalog        = (*Catalog)(nil)
	_ orgdocs.UserDocService = (*Catalog)(nil)
)

// Catalog lists fixed descriptors followed by user docs in insertion order.
// It also guards user doc changes so that a user doc cannot shadow a fixed
// topic.
type Catalog struct {
	Fixed    []*orgdocs.Descriptor
	UserDocs orgdocs.UserDocService
}

// New creates a Catalog.
func New(fixed []*orgdocs.Descriptor, userDocs orgdocs.UserDocService) *Catalog {
	return &Catalog{Fixed: fixed, UserDocs: userDocs}
}

// Descriptors returns a snapshot of all descriptors.
func (c *Catalog) Descriptors(ctx context.Context) ([]*orgdocs.Descriptor, error) {
	descs := make([]*orgdocs.Descriptor, 0, len(c.Fixed))
	descs = append(descs, c.Fixed...)

	if c.UserDocs == nil {
		return descs, nil
	}
	docs, err := c.UserDocs.FindUserDocs(ctx)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		descs = append(descs, doc.Descriptor())
	}
	return descs, nil
}

// FindDescriptor returns the descriptor for topic.
func (c *Catalog) FindDescriptor(ctx context.Context, topic string) (*orgdocs.Descriptor, error) {
	descs, err := c.Descriptors(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range descs {
		if d.Topic == topic {
			return d, nil
		}
	}
	return nil, orgdocs.Errorf(orgdocs.ENOTFOUND, "Topic %q not found.", topic)
}

func (c *Catalog) fixed(topic string) bool {
	for _, d := range c.Fixed {
		if d.Topic == topic {
			return true
		}
	}
	return false
}

// CreateUserDoc adds a user doc unless its topic is already in the catalog.
func (c *Catalog) CreateUserDoc(ctx context.Context, doc *orgdocs.UserDoc) error {
	if c.fixed(doc.Topic) {
		return orgdocs.Errorf(orgdocs.ECONFLICT, "Topic %q already exists", doc.Topic)
	}
	return c.UserDocs.CreateUserDoc(ctx, doc)
}

func (c *Catalog) FindUserDocs(ctx context.Context) ([]*orgdocs.UserDoc, error) {
	return c.UserDocs.FindUserDocs(ctx)
}

// DeleteUserDoc removes a user doc. Fixed topics cannot be removed and are
// reported like any other topic without a user doc.
func (c *Catalog) DeleteUserDoc(ctx context.Context, topic string) error {
	if c.fixed(topic) {
		return orgdocs.Errorf(orgdocs.ENOTFOUND, "Documentation source %q not found. Use `list_user_docs` to see available user docs.", topic)
	}
	return c.UserDocs.DeleteUserDoc(ctx, topic)
}
