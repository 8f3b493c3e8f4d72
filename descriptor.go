package orgdocs

import "context"

// Category groups descriptors by ownership.
type Category string

// Descriptor categories.
const (
	CategoryInternal Category = "internal"
	CategoryPublic   Category = "public"
	CategoryUser     Category = "user"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryInternal, CategoryPublic, CategoryUser:
		return true
	}
	return false
}

// Descriptor identifies one document: where to fetch it and how to rank it.
// Descriptors are immutable once handed to a DocFetcher.
type Descriptor struct {
	Topic       string   `json:"topic"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Priority    float64  `json:"priority"` // 0.0 to 1.0, higher = more important
	Source      Source   `json:"source"`
}

// Validate returns an error if the descriptor contains invalid fields.
func (d *Descriptor) Validate() error {
	if d.Topic == "" {
		return Errorf(EINVALID, "descriptor topic required")
	}
	if !d.Category.Valid() {
		return Errorf(EINVALID, "descriptor %q has unknown category %q", d.Topic, d.Category)
	}
	if d.Priority < 0 || d.Priority > 1 {
		return Errorf(EINVALID, "descriptor %q priority must be within [0,1], got %g", d.Topic, d.Priority)
	}
	if IsNilSource(d.Source) {
		return Errorf(EINVALID, "descriptor %q source required", d.Topic)
	}
	return d.Source.Validate()
}

// Catalog is the ordered collection of all known descriptors, built-in and
// user-added. Implementations return a snapshot at call time.
type Catalog interface {
	// Descriptors returns all descriptors in catalog order.
	Descriptors(ctx context.Context) ([]*Descriptor, error)

	// FindDescriptor returns the descriptor for a topic.
	// Returns ENOTFOUND naming the topic if it does not exist.
	FindDescriptor(ctx context.Context, topic string) (*Descriptor, error)
}

// FilterByCategory returns the descriptors of the given category, in order.
func FilterByCategory(descs []*Descriptor, category Category) []*Descriptor {
	var out []*Descriptor
	for _, d := range descs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Topics returns the topic keys of the descriptors, in order.
func Topics(descs []*Descriptor) []string {
	topics := make([]string, 0, len(descs))
	for _, d := range descs {
		topics = append(topics, d.Topic)
	}
	return topics
}
