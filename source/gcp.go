package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/orgdocs"
)

// DefaultGCPBaseURL is the Google Cloud documentation origin.
const DefaultGCPBaseURL = "https://cloud.google.com"

var _ orgdocs.Adapter[*orgdocs.GCPSource] = (*GCPAdapter)(nil)

// GCPAdapter fetches Google Cloud product documentation pages.
type GCPAdapter struct {
	BaseURL   string
	Fetcher   orgdocs.Fetcher
	Extractor orgdocs.Extractor
	Converter orgdocs.Converter
	Cache     orgdocs.Cache
}

// NewGCPAdapter creates a GCPAdapter against DefaultGCPBaseURL.
func NewGCPAdapter(fetcher orgdocs.Fetcher, extractor orgdocs.Extractor, converter orgdocs.Converter, cache orgdocs.Cache) *GCPAdapter {
	return &GCPAdapter{
		BaseURL:   DefaultGCPBaseURL,
		Fetcher:   fetcher,
		Extractor: extractor,
		Converter: converter,
		Cache:     cache,
	}
}

// GCPCacheKey returns the cache key of a GCP source.
func GCPCacheKey(src *orgdocs.GCPSource) string {
	return fmt.Sprintf("gcp:%s:%s", src.Product, src.Page)
}

func (a *GCPAdapter) Fetch(ctx context.Context, src *orgdocs.GCPSource) (string, error) {
	key := GCPCacheKey(src)
	if content, ok := a.Cache.Get(key); ok {
		return content, nil
	}

	url := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(a.BaseURL, "/"), src.Product, src.Page)
	resp, err := fetchHTML(ctx, a.Fetcher, url, acceptHTML, "GCP docs error",
		fmt.Sprintf("GCP documentation not found: %s/%s", src.Product, src.Page))
	if err != nil {
		return "", err
	}

	content, err := extractMarkdown(a.Extractor, a.Converter, resp.Body)
	if err != nil {
		return "", err
	}

	a.Cache.Set(key, content)
	return content, nil
}

// CheckAccess probes the Cloud Storage docs landing page.
func (a *GCPAdapter) CheckAccess(ctx context.Context) bool {
	return probe(ctx, a.Fetcher, strings.TrimSuffix(a.BaseURL, "/")+"/storage/docs")
}
