package goquery_test

import (
	"testing"

	"github.com/fwojciec/orgdocs"
	"github.com/fwojciec/orgdocs/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ orgdocs.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns first matching GCP region", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Cloud Storage buckets</title></head><body>
<header>Google Cloud</header>
<nav><a href="/">Home</a></nav>
<article class="devsite-article"><h1>Buckets</h1><p>Buckets hold objects.</p><script>track()</script></article>
<main><p>Outer main</p></main>
<footer>Terms</footer>
</body></html>`

		result, err := goquery.NewExtractor(goquery.GCPSelectors...).Extract(html)

		require.NoError(t, err)
		assert.False(t, result.Fallback)
		assert.Equal(t, "Cloud Storage buckets", result.Title)
		assert.Contains(t, result.ContentHTML, "Buckets hold objects.")
		assert.NotContains(t, result.ContentHTML, "track()")
		assert.NotContains(t, result.ContentHTML, "Outer main")
	})

	t.Run("tries selectors in order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="devsite-article-body"><p>Body region</p></div><main><p>Main region</p></main></body></html>`

		result, err := goquery.NewExtractor(goquery.GCPSelectors...).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "<p>Body region</p>", result.ContentHTML)
	})

	t.Run("matches class substrings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="provider-markdown-body"><h2>Argument Reference</h2></div></body></html>`

		result, err := goquery.NewExtractor(goquery.TerraformSelectors...).Extract(html)

		require.NoError(t, err)
		assert.False(t, result.Fallback)
		assert.Contains(t, result.ContentHTML, "Argument Reference")
	})

	t.Run("falls back to cleaned body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav>Menu</nav><div><p>Pipelines run tasks.</p></div><style>p{}</style><footer>Footer</footer></body></html>`

		result, err := goquery.NewExtractor(goquery.TerraformSelectors...).Extract(html)

		require.NoError(t, err)
		assert.True(t, result.Fallback)
		assert.Contains(t, result.ContentHTML, "Pipelines run tasks.")
		assert.NotContains(t, result.ContentHTML, "Menu")
		assert.NotContains(t, result.ContentHTML, "Footer")
		assert.NotContains(t, result.ContentHTML, "p{}")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor(goquery.TektonSelectors...).Extract("  ")

		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(err))
	})
}
