package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/orgdocs"
	"github.com/fwojciec/orgdocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		topic    string
		category orgdocs.Category
		want     string
		wantErr  bool
	}{
		{name: "internal topic", topic: "naming-standards", category: orgdocs.CategoryInternal, want: "internal/naming-standards.md"},
		{name: "user topic", topic: "runbook", category: orgdocs.CategoryUser, want: "user/runbook.md"},
		{name: "rejects slash", topic: "a/b", category: orgdocs.CategoryPublic, wantErr: true},
		{name: "rejects parent", topic: "..", category: orgdocs.CategoryPublic, wantErr: true},
		{name: "rejects empty", topic: "", category: orgdocs.CategoryPublic, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.TopicPath(&orgdocs.Descriptor{Topic: tt.topic, Category: tt.category})
			if tt.wantErr {
				assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	doc := &orgdocs.Document{
		Descriptor: &orgdocs.Descriptor{
			Topic:    "runbook",
			Title:    "On-call Runbook",
			Category: orgdocs.CategoryUser,
			Source:   &orgdocs.URLSource{URL: "https://docs.example.com/runbook"},
		},
		Content: "# Runbook\n\nPage the commander.",
	}

	got, err := fs.FormatDocument(doc, time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	want := "---\n" +
		"topic: runbook\n" +
		"title: On-call Runbook\n" +
		"category: user\n" +
		"source: url\n" +
		"url: https://docs.example.com/runbook\n" +
		"exported: \"2026-05-06\"\n" +
		"---\n\n" +
		"# Runbook\n\nPage the commander.\n"
	assert.Equal(t, want, got)
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes file under category directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteDocument(context.Background(), &orgdocs.Document{
			Descriptor: &orgdocs.Descriptor{
				Topic:    "tekton-pipelines",
				Title:    "Tekton Pipelines",
				Category: orgdocs.CategoryPublic,
				Source:   &orgdocs.TektonSource{DocPath: "pipelines/pipelines"},
			},
			Content: "Pipelines run tasks.",
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "public", "tekton-pipelines.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "source: tekton\n")
		assert.NotContains(t, string(data), "url:")
		assert.Contains(t, string(data), "Pipelines run tasks.\n")
	})

	t.Run("overwrites earlier export", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		desc := &orgdocs.Descriptor{Topic: "x", Category: orgdocs.CategoryInternal, Source: &orgdocs.GitHubSource{Repo: "a/b", Path: "x.md"}}

		require.NoError(t, w.WriteDocument(context.Background(), &orgdocs.Document{Descriptor: desc, Content: "old"}))
		require.NoError(t, w.WriteDocument(context.Background(), &orgdocs.Document{Descriptor: desc, Content: "new"}))

		data, err := os.ReadFile(filepath.Join(dir, "internal", "x.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "new\n")
		assert.NotContains(t, string(data), "old")
	})

	t.Run("rejects missing descriptor", func(t *testing.T) {
		t.Parallel()

		err := fs.NewWriter(t.TempDir()).WriteDocument(context.Background(), &orgdocs.Document{})

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(err))
	})
}
