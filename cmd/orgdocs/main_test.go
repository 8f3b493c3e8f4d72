package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/orgdocs"
	main "github.com/fwojciec/orgdocs/cmd/orgdocs"
	"github.com/fwojciec/orgdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `docs:
  - topic: runbook
    title: On-call Runbook
    description: Steps for paging incidents
    category: internal
    priority: 1.0
    source:
      type: url
      url: https://docs.example.com/runbook.md
`

// runMain runs the program against a temporary database and a catalog file
// whose only topic is served by fetcher.
func runMain(t *testing.T, dbPath string, fetcher orgdocs.Fetcher, args ...string) (string, string, error) {
	t.Helper()

	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	m := main.NewMain()
	m.DBPath = dbPath
	m.Fetcher = fetcher

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), append([]string{"--catalog", catalogPath}, args...), stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func markdownFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string, accept string) (*orgdocs.Response, error) {
			return &orgdocs.Response{
				URL:         url,
				StatusCode:  200,
				Status:      "200 OK",
				ContentType: "text/markdown",
				Body:        "# Runbook\n\nPage the incident commander first.",
			}, nil
		},
	}
}

func TestMain_Topics(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	stdout, _, err := runMain(t, dbPath, nil, "topics")

	require.NoError(t, err)
	assert.Contains(t, stdout, "- **runbook**: Steps for paging incidents")
}

func TestMain_GetRecordsHistory(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	stdout, _, err := runMain(t, dbPath, markdownFetcher(), "get", "runbook")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# On-call Runbook")
	assert.Contains(t, stdout, "Page the incident commander first.")

	stdout, _, err = runMain(t, dbPath, nil, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "runbook")
	assert.Contains(t, stdout, "url")
}

func TestMain_GetUnknownTopic(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	_, stderr, err := runMain(t, dbPath, nil, "get", "nope")

	require.Error(t, err)
	assert.Equal(t, orgdocs.ENOTFOUND, orgdocs.ErrorCode(err))
	assert.Contains(t, stderr, `error: Topic "nope" not found.`)
	assert.Contains(t, stderr, "Available topics: runbook")
}

func TestMain_Search(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	stdout, _, err := runMain(t, dbPath, markdownFetcher(), "search", "incident")

	require.NoError(t, err)
	assert.Contains(t, stdout, `# Search Results for "incident"`)
	assert.Contains(t, stdout, "**Topic**: runbook")
}

func TestMain_UserDocLifecycle(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	stdout, _, err := runMain(t, dbPath, nil, "add", "style-guide", "https://docs.example.com/style",
		"--title", "Style Guide", "--description", "Writing conventions")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Added "style-guide"`)

	stdout, _, err = runMain(t, dbPath, nil, "user-docs")
	require.NoError(t, err)
	assert.Contains(t, stdout, "| style-guide | Style Guide | https://docs.example.com/style |")

	stdout, _, err = runMain(t, dbPath, nil, "topics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "## User-Added Documentation")

	_, stderr, err := runMain(t, dbPath, nil, "add", "runbook", "https://docs.example.com/other",
		"--title", "Other", "--description", "Clashes with the catalog")
	require.Error(t, err)
	assert.Equal(t, orgdocs.ECONFLICT, orgdocs.ErrorCode(err))
	assert.Contains(t, stderr, "Hint:")

	stdout, _, err = runMain(t, dbPath, nil, "remove", "style-guide")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Removed "style-guide"`)

	_, _, err = runMain(t, dbPath, nil, "remove", "style-guide")
	require.Error(t, err)
	assert.Equal(t, orgdocs.ENOTFOUND, orgdocs.ErrorCode(err))
}

func TestMain_Preview(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	stdout, _, err := runMain(t, dbPath, markdownFetcher(), "preview", "https://docs.example.com/runbook.md")

	require.NoError(t, err)
	assert.Contains(t, stdout, "# URL Preview: Runbook")
}
