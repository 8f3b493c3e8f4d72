package mock

import (
	"context"

	"github.com/fwojciec/orgdocs"
)

var (
	_ orgdocs.Catalog        = (*Catalog)(nil)
	_ orgdocs.UserDocService = (*UserDocService)(nil)
)

// Catalog is a mock implementation of orgdocs.Catalog.
type Catalog struct {
	DescriptorsFn    func(ctx context.Context) ([]*orgdocs.Descriptor, error)
	FindDescriptorFn func(ctx context.Context, topic string) (*orgdocs.Descriptor, error)
}

func (c *Catalog) Descriptors(ctx context.Context) ([]*orgdocs.Descriptor, error) {
	return c.DescriptorsFn(ctx)
}

func (c *Catalog) FindDescriptor(ctx context.Context, topic string) (*orgdocs.Descriptor, error) {
	return c.FindDescriptorFn(ctx, topic)
}

// UserDocService is a mock implementation of orgdocs.UserDocService.
type UserDocService struct {
	CreateUserDocFn func(ctx context.Context, doc *orgdocs.UserDoc) error
	FindUserDocsFn  func(ctx context.Context) ([]*orgdocs.UserDoc, error)
	DeleteUserDocFn func(ctx context.Context, topic string) error
}

func (s *UserDocService) CreateUserDoc(ctx context.Context, doc *orgdocs.UserDoc) error {
	return s.CreateUserDocFn(ctx, doc)
}

func (s *UserDocService) FindUserDocs(ctx context.Context) ([]*orgdocs.UserDoc, error) {
	return s.FindUserDocsFn(ctx)
}

func (s *UserDocService) DeleteUserDoc(ctx context.Context, topic string) error {
	return s.DeleteUserDocFn(ctx, topic)
}
