package orgdocs

import (
	"context"
	"time"
)

// UserDocPriority is the ranking priority given to user-added documents.
const UserDocPriority = 0.9

// UserDoc is a documentation URL added by the user.
type UserDoc struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	AddedAt     time.Time `json:"addedAt"`
}

// Validate returns an error if the user doc contains invalid fields.
func (d *UserDoc) Validate() error {
	if d.Topic == "" || d.Title == "" || d.Description == "" || d.URL == "" {
		return Errorf(EINVALID, "topic, title, description, and url are required")
	}
	return (&URLSource{URL: d.URL}).Validate()
}

// Descriptor converts the user doc into a catalog descriptor.
func (d *UserDoc) Descriptor() *Descriptor {
	return &Descriptor{
		Topic:       d.Topic,
		Title:       d.Title,
		Description: d.Description,
		Category:    CategoryUser,
		Priority:    UserDocPriority,
		Source:      &URLSource{URL: d.URL},
	}
}

// UserDocService represents a service for managing user-added documents.
type UserDocService interface {
	// CreateUserDoc adds a new user doc.
	// Returns ECONFLICT if the topic already exists.
	CreateUserDoc(ctx context.Context, doc *UserDoc) error

	// FindUserDocs returns all user docs in insertion order.
	FindUserDocs(ctx context.Context) ([]*UserDoc, error)

	// DeleteUserDoc removes the user doc for a topic.
	// Returns ENOTFOUND if it does not exist.
	DeleteUserDoc(ctx context.Context, topic string) error
}
