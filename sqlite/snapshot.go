package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/orgdocs"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ orgdocs.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements orgdocs.SnapshotService using SQLite.
// Only the hash and size of the content are stored.
type SnapshotService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, Now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateSnapshot records a retrieval of content.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *orgdocs.Snapshot, content string) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.ContentHash = hashContent(content)
	snap.Size = len(content)
	snap.FetchedAt = s.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, topic, source_kind, content_hash, size, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.Topic, string(snap.Kind), snap.ContentHash, snap.Size, formatTime(snap.FetchedAt))

	return err
}

// FindSnapshots returns snapshots matching the filter, most recent first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter orgdocs.SnapshotFilter) ([]*orgdocs.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, topic, source_kind, content_hash, size, fetched_at FROM snapshots WHERE 1=1")

	if filter.Topic != nil {
		query.WriteString(" AND topic = ?")
		args = append(args, *filter.Topic)
	}

	query.WriteString(" ORDER BY rowid DESC")
	writePage(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*orgdocs.Snapshot
	for rows.Next() {
		var snap orgdocs.Snapshot
		var kind, fetchedAt string

		if err := rows.Scan(&snap.ID, &snap.Topic, &kind, &snap.ContentHash, &snap.Size, &fetchedAt); err != nil {
			return nil, err
		}
		snap.Kind = orgdocs.SourceKind(kind)

		if snap.FetchedAt, err = parseTime(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}
