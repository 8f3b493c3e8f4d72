package mock

import (
	"context"

	"github.com/fwojciec/orgdocs"
)

var (
	_ orgdocs.DocumentService = (*DocumentService)(nil)
	_ orgdocs.SnapshotService = (*SnapshotService)(nil)
)

// DocumentService is a mock implementation of orgdocs.DocumentService.
type DocumentService struct {
	GetDocumentFn func(ctx context.Context, topic string) (*orgdocs.Document, error)
}

func (s *DocumentService) GetDocument(ctx context.Context, topic string) (*orgdocs.Document, error) {
	return s.GetDocumentFn(ctx, topic)
}

// SnapshotService is a mock implementation of orgdocs.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn func(ctx context.Context, snap *orgdocs.Snapshot, content string) error
	FindSnapshotsFn  func(ctx context.Context, filter orgdocs.SnapshotFilter) ([]*orgdocs.Snapshot, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *orgdocs.Snapshot, content string) error {
	return s.CreateSnapshotFn(ctx, snap, content)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter orgdocs.SnapshotFilter) ([]*orgdocs.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

var _ orgdocs.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of orgdocs.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *orgdocs.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *orgdocs.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}
