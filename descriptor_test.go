package orgdocs_test

import (
	"testing"

	"github.com/fwojciec/orgdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *orgdocs.Descriptor {
		return &orgdocs.Descriptor{
			Topic:    "naming-standards",
			Title:    "Resource Naming Standards",
			Category: orgdocs.CategoryInternal,
			Priority: 1.0,
			Source:   &orgdocs.GitHubSource{Repo: "acme/cloud-standards", Path: "gcp/naming.md"},
		}
	}

	t.Run("accepts valid descriptor", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("rejects empty topic", func(t *testing.T) {
		t.Parallel()

		d := valid()
		d.Topic = ""

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(d.Validate()))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		d := valid()
		d.Category = "secret"

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(d.Validate()))
	})

	t.Run("rejects priority out of range", func(t *testing.T) {
		t.Parallel()

		d := valid()
		d.Priority = 1.5

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(d.Validate()))
	})

	t.Run("rejects missing source", func(t *testing.T) {
		t.Parallel()

		d := valid()
		d.Source = nil

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(d.Validate()))
	})

	t.Run("rejects nil variant source", func(t *testing.T) {
		t.Parallel()

		d := valid()
		d.Source = (*orgdocs.GCPSource)(nil)

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(d.Validate()))
	})

	t.Run("rejects malformed repo", func(t *testing.T) {
		t.Parallel()

		d := valid()
		d.Source = &orgdocs.GitHubSource{Repo: "cloud-standards", Path: "README.md"}

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(d.Validate()))
	})
}

func TestGitHubSource_Ref(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "main", (&orgdocs.GitHubSource{}).Ref())
	assert.Equal(t, "develop", (&orgdocs.GitHubSource{Branch: "develop"}).Ref())
}

func TestFilterByCategory(t *testing.T) {
	t.Parallel()

	descs := []*orgdocs.Descriptor{
		{Topic: "a", Category: orgdocs.CategoryInternal},
		{Topic: "b", Category: orgdocs.CategoryPublic},
		{Topic: "c", Category: orgdocs.CategoryInternal},
	}

	internal := orgdocs.FilterByCategory(descs, orgdocs.CategoryInternal)

	assert.Equal(t, []string{"a", "c"}, orgdocs.Topics(internal))
}

func TestUserDoc_Descriptor(t *testing.T) {
	t.Parallel()

	doc := &orgdocs.UserDoc{Topic: "team-wiki", Title: "Team Wiki", Description: "Wiki", URL: "https://wiki.example.com"}

	d := doc.Descriptor()

	assert.Equal(t, orgdocs.CategoryUser, d.Category)
	assert.Equal(t, orgdocs.UserDocPriority, d.Priority)
	assert.Equal(t, &orgdocs.URLSource{URL: "https://wiki.example.com"}, d.Source)
	require.NoError(t, d.Validate())
}
