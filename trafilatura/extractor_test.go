package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/orgdocs"
	"github.com/fwojciec/orgdocs/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements orgdocs.Extractor at compile time.
var _ orgdocs.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Team Wiki - Onboarding</title>
<meta property="og:title" content="Onboarding Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Onboarding</h1>
<p>New engineers request project access through the platform team.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Runbook</title></head>
<body>
<nav><a href="/">Home</a><a href="/runbooks">Runbooks</a></nav>
<article>
<h1>Rotating service account keys</h1>
<p>Service account keys must be rotated every ninety days by the owning team.</p>
<pre><code>gcloud iam service-accounts keys create key.json</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2026</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "must be rotated every ninety days")
		assert.Contains(t, result.ContentHTML, "gcloud iam service-accounts")
	})

	t.Run("returns content for minimal HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Tiny</title></head><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, orgdocs.EINVALID, orgdocs.ErrorCode(err))
	})
}
