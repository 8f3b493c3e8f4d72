package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/orgdocs/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an in-memory database closed at test cleanup.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var userDocs int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user_docs").Scan(&userDocs)
		require.NoError(t, err)

		var snapshots int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots").Scan(&snapshots)
		require.NoError(t, err)
	})

	t.Run("reopening an existing file keeps its rows", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/orgdocs.db"
		ctx := context.Background()

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(ctx, `INSERT INTO user_docs (id, topic, title, description, url, added_at)
			VALUES ('1', 'runbook', 'Runbook', 'Ops runbook', 'https://example.com', '2026-01-02T03:04:05Z')`)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user_docs").Scan(&n))
		require.Equal(t, 1, n)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}
