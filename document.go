package orgdocs

import (
	"context"
	"time"
)

// Document is the content of one descriptor retrieved directly by topic.
type Document struct {
	Descriptor *Descriptor `json:"descriptor"`
	Content    string      `json:"content"`
}

// DocumentService retrieves documents by topic.
type DocumentService interface {
	// GetDocument fetches the document for a topic.
	// Returns ENOTFOUND naming the topic if it is not in the catalog.
	// Fetch errors are returned unchanged.
	GetDocument(ctx context.Context, topic string) (*Document, error)
}

// Snapshot records one successful retrieval of a topic.
type Snapshot struct {
	ID          string     `json:"id"`
	Topic       string     `json:"topic"`
	Kind        SourceKind `json:"kind"`
	ContentHash string     `json:"contentHash"`
	Size        int        `json:"size"`
	FetchedAt   time.Time  `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Topic == "" {
		return Errorf(EINVALID, "snapshot topic required")
	}
	if s.Kind == "" {
		return Errorf(EINVALID, "snapshot source kind required")
	}
	return nil
}

// SnapshotService records and lists retrieval snapshots.
type SnapshotService interface {
	// CreateSnapshot records a retrieval of content for the snapshot's topic.
	// ID, ContentHash, Size and FetchedAt are set by the service.
	CreateSnapshot(ctx context.Context, snap *Snapshot, content string) error

	// FindSnapshots returns snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	Topic *string `json:"topic"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentWriter persists retrieved documents outside the library.
type DocumentWriter interface {
	// WriteDocument stores doc, replacing any earlier copy of its topic.
	WriteDocument(ctx context.Context, doc *Document) error
}
