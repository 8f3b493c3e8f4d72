// Package library retrieves documents directly by topic.
package library

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/orgdocs"
)

var _ orgdocs.DocumentService = (*Library)(nil)

// Library looks topics up in the catalog and fetches them through the
// DocFetcher. Successful retrievals are recorded as snapshots when a
// SnapshotService is set.
type Library struct {
	Catalog   orgdocs.Catalog
	Fetcher   orgdocs.DocFetcher
	Snapshots orgdocs.SnapshotService
	Logger    *slog.Logger
}

// New creates a Library.
func New(catalog orgdocs.Catalog, fetcher orgdocs.DocFetcher, snapshots orgdocs.SnapshotService, logger *slog.Logger) *Library {
	return &Library{
		Catalog:   catalog,
		Fetcher:   fetcher,
		Snapshots: snapshots,
		Logger:    logger,
	}
}

// GetDocument returns the document for topic. An unknown topic is reported
// as ENOTFOUND listing the available topics; fetch errors are returned
// unchanged.
func (l *Library) GetDocument(ctx context.Context, topic string) (*orgdocs.Document, error) {
	if topic == "" {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "topic parameter is required")
	}

	desc, err := l.Catalog.FindDescriptor(ctx, topic)
	if orgdocs.ErrorCode(err) == orgdocs.ENOTFOUND {
		return nil, l.unknownTopic(ctx, topic)
	} else if err != nil {
		return nil, err
	}

	content, err := l.Fetcher.FetchDoc(ctx, desc)
	if err != nil {
		return nil, err
	}

	l.record(ctx, desc, content)

	return &orgdocs.Document{Descriptor: desc, Content: content}, nil
}

func (l *Library) unknownTopic(ctx context.Context, topic string) error {
	descs, err := l.Catalog.Descriptors(ctx)
	if err != nil {
		return err
	}
	return orgdocs.Errorf(orgdocs.ENOTFOUND, "Topic %q not found.\n\nAvailable topics: %s",
		topic, strings.Join(orgdocs.Topics(descs), ", "))
}

// record stores a snapshot of the retrieval. Failures are logged only.
func (l *Library) record(ctx context.Context, d *orgdocs.Descriptor, content string) {
	if l.Snapshots == nil {
		return
	}
	snap := &orgdocs.Snapshot{Topic: d.Topic, Kind: d.Source.Kind()}
	if err := l.Snapshots.CreateSnapshot(ctx, snap, content); err != nil && l.Logger != nil {
		l.Logger.Warn("snapshot not recorded", "topic", d.Topic, "error", err)
	}
}
