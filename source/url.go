package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/orgdocs"
)

// AcceptAny is the Accept header sent to arbitrary documentation URLs.
const AcceptAny = "text/html, text/markdown, text/plain, */*"

var _ orgdocs.Adapter[*orgdocs.URLSource] = (*URLAdapter)(nil)

// URLAdapter fetches documents from arbitrary URLs. HTML is extracted and
// converted to markdown; markdown and plain text are returned as served.
type URLAdapter struct {
	Fetcher   orgdocs.Fetcher
	Extractor orgdocs.Extractor
	Converter orgdocs.Converter
	Cache     orgdocs.Cache

	// ProbeURL is checked by CheckAccess. When empty the adapter has no
	// fixed origin to probe and reports itself reachable.
	ProbeURL string
}

// NewURLAdapter creates a URLAdapter.
func NewURLAdapter(fetcher orgdocs.Fetcher, extractor orgdocs.Extractor, converter orgdocs.Converter, cache orgdocs.Cache) *URLAdapter {
	return &URLAdapter{
		Fetcher:   fetcher,
		Extractor: extractor,
		Converter: converter,
		Cache:     cache,
	}
}

// URLCacheKey returns the cache key of a URL source.
func URLCacheKey(src *orgdocs.URLSource) string {
	return "url:" + src.URL
}

func (a *URLAdapter) Fetch(ctx context.Context, src *orgdocs.URLSource) (string, error) {
	key := URLCacheKey(src)
	if content, ok := a.Cache.Get(key); ok {
		return content, nil
	}

	origin := "Failed to fetch " + src.URL
	resp, err := fetchHTML(ctx, a.Fetcher, src.URL, AcceptAny, origin,
		fmt.Sprintf("%s: %s", origin, "404 Not Found"))
	if err != nil {
		return "", err
	}

	content := resp.Body
	if strings.Contains(resp.ContentType, "text/html") {
		if content, err = a.normalize(resp.Body); err != nil {
			return "", err
		}
	}

	a.Cache.Set(key, content)
	return content, nil
}

func (a *URLAdapter) normalize(body string) (string, error) {
	html := body
	if result, err := a.Extractor.Extract(body); err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		html = result.ContentHTML
	}
	return toMarkdown(a.Converter, html)
}

func (a *URLAdapter) CheckAccess(ctx context.Context) bool {
	if a.ProbeURL == "" {
		return true
	}
	return probe(ctx, a.Fetcher, a.ProbeURL)
}
