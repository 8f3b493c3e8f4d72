package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/orgdocs"
	"github.com/fwojciec/orgdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserDoc(topic string) *orgdocs.UserDoc {
	return &orgdocs.UserDoc{
		Topic:       topic,
		Title:       "Title " + topic,
		Description: "Description " + topic,
		URL:         "https://example.com/" + topic,
	}
}

func TestUserDocService_CreateUserDoc(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))
		doc := newUserDoc("runbook")

		before := time.Now().UTC().Add(-time.Second)
		require.NoError(t, svc.CreateUserDoc(context.Background(), doc))

		assert.NotEmpty(t, doc.ID)
		assert.True(t, doc.AddedAt.After(before))
		assert.Equal(t, time.UTC, doc.AddedAt.Location())
	})

	t.Run("rejects duplicate topic", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateUserDoc(ctx, newUserDoc("runbook")))

		err := svc.CreateUserDoc(ctx, newUserDoc("runbook"))

		assert.Equal(t, orgdocs.ECONFLICT, orgdocs.ErrorCode(err))
		assert.Equal(t, `Topic "runbook" already exists`, orgdocs.ErrorMessage(err))
	})

	t.Run("concurrent adds of one topic yield a single doc", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))
		ctx := context.Background()

		errs := make([]error, 8)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = svc.CreateUserDoc(ctx, newUserDoc("runbook"))
			}()
		}
		wg.Wait()

		var created int
		for _, err := range errs {
			if err == nil {
				created++
				continue
			}
			assert.Equal(t, orgdocs.ECONFLICT, orgdocs.ErrorCode(err))
		}
		assert.Equal(t, 1, created)

		docs, err := svc.FindUserDocs(ctx)
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("reports conflict across connections to one file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "orgdocs.db")
		first := sqlite.NewDB(path)
		require.NoError(t, first.Open())
		t.Cleanup(func() { first.Close() })
		second := sqlite.NewDB(path)
		require.NoError(t, second.Open())
		t.Cleanup(func() { second.Close() })
		ctx := context.Background()

		require.NoError(t, sqlite.NewUserDocService(first).CreateUserDoc(ctx, newUserDoc("runbook")))
		err := sqlite.NewUserDocService(second).CreateUserDoc(ctx, newUserDoc("runbook"))

		assert.Equal(t, orgdocs.ECONFLICT, orgdocs.ErrorCode(err))
		assert.Equal(t, `Topic "runbook" already exists`, orgdocs.ErrorMessage(err))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))
		doc := newUserDoc("runbook")
		doc.Title = ""

		err := svc.CreateUserDoc(context.Background(), doc)

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(err))
	})
}

func TestUserDocService_FindUserDocs(t *testing.T) {
	t.Parallel()

	t.Run("returns docs in insertion order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))
		ctx := context.Background()
		for _, topic := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, svc.CreateUserDoc(ctx, newUserDoc(topic)))
		}

		docs, err := svc.FindUserDocs(ctx)
		require.NoError(t, err)

		require.Len(t, docs, 3)
		assert.Equal(t, "zeta", docs[0].Topic)
		assert.Equal(t, "alpha", docs[1].Topic)
		assert.Equal(t, "mid", docs[2].Topic)
		assert.Equal(t, "https://example.com/alpha", docs[1].URL)
	})

	t.Run("returns empty result for empty table", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))

		docs, err := svc.FindUserDocs(context.Background())

		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestUserDocService_DeleteUserDoc(t *testing.T) {
	t.Parallel()

	t.Run("removes existing doc", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateUserDoc(ctx, newUserDoc("runbook")))

		require.NoError(t, svc.DeleteUserDoc(ctx, "runbook"))

		docs, err := svc.FindUserDocs(ctx)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("returns not found for unknown topic", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewUserDocService(setupTestDB(t))

		err := svc.DeleteUserDoc(context.Background(), "missing")

		assert.Equal(t, orgdocs.ENOTFOUND, orgdocs.ErrorCode(err))
		assert.Contains(t, orgdocs.ErrorMessage(err), "list_user_docs")
	})
}
