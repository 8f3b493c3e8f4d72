package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/orgdocs"
	"github.com/fwojciec/orgdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("sets hash size and time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(setupTestDB(t))
		fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
		svc.Now = func() time.Time { return fixed }

		snap := &orgdocs.Snapshot{Topic: "naming-standards", Kind: orgdocs.SourceGitHub}
		require.NoError(t, svc.CreateSnapshot(context.Background(), snap, "# Naming"))

		assert.NotEmpty(t, snap.ID)
		assert.Len(t, snap.ContentHash, 16)
		assert.Equal(t, 8, snap.Size)
		assert.Equal(t, fixed, snap.FetchedAt)
	})

	t.Run("same content hashes equal", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(setupTestDB(t))
		ctx := context.Background()

		a := &orgdocs.Snapshot{Topic: "a", Kind: orgdocs.SourceURL}
		b := &orgdocs.Snapshot{Topic: "b", Kind: orgdocs.SourceURL}
		c := &orgdocs.Snapshot{Topic: "c", Kind: orgdocs.SourceURL}
		require.NoError(t, svc.CreateSnapshot(ctx, a, "same"))
		require.NoError(t, svc.CreateSnapshot(ctx, b, "same"))
		require.NoError(t, svc.CreateSnapshot(ctx, c, "different"))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects missing topic", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(setupTestDB(t))

		err := svc.CreateSnapshot(context.Background(), &orgdocs.Snapshot{Kind: orgdocs.SourceGCP}, "x")

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.SnapshotService {
		t.Helper()
		svc := sqlite.NewSnapshotService(setupTestDB(t))
		ctx := context.Background()
		for _, topic := range []string{"alpha", "beta", "alpha", "alpha"} {
			snap := &orgdocs.Snapshot{Topic: topic, Kind: orgdocs.SourceTekton}
			require.NoError(t, svc.CreateSnapshot(ctx, snap, topic))
		}
		return svc
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		snaps, err := svc.FindSnapshots(context.Background(), orgdocs.SnapshotFilter{})
		require.NoError(t, err)

		require.Len(t, snaps, 4)
		assert.Equal(t, "alpha", snaps[0].Topic)
		assert.Equal(t, "beta", snaps[2].Topic)
		assert.Equal(t, orgdocs.SourceTekton, snaps[0].Kind)
	})

	t.Run("filters by topic", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		topic := "alpha"

		snaps, err := svc.FindSnapshots(context.Background(), orgdocs.SnapshotFilter{Topic: &topic})
		require.NoError(t, err)

		assert.Len(t, snaps, 3)
		for _, s := range snaps {
			assert.Equal(t, "alpha", s.Topic)
		}
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		snaps, err := svc.FindSnapshots(context.Background(), orgdocs.SnapshotFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)

		require.Len(t, snaps, 2)
		assert.Equal(t, "alpha", snaps[0].Topic)
		assert.Equal(t, "beta", snaps[1].Topic)
	})
	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		snaps, err := svc.FindSnapshots(context.Background(), orgdocs.SnapshotFilter{Offset: 3})
		require.NoError(t, err)

		require.Len(t, snaps, 1)
		assert.Equal(t, "alpha", snaps[0].Topic)
	})

	t.Run("reports corrupt timestamp as internal", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		_, err := db.ExecContext(ctx, `INSERT INTO snapshots (id, topic, source_kind, content_hash, size, fetched_at) VALUES ('x', 'alpha', 'url', 'h', 1, 'yesterday')`)
		require.NoError(t, err)

		_, err = sqlite.NewSnapshotService(db).FindSnapshots(ctx, orgdocs.SnapshotFilter{})

		assert.Equal(t, orgdocs.EINTERNAL, orgdocs.ErrorCode(err))
		assert.Equal(t, `corrupt fetched_at value "yesterday"`, orgdocs.ErrorMessage(err))
	})
}
