package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/orgdocs"
)

// DefaultTektonBaseURL is the Tekton documentation origin.
const DefaultTektonBaseURL = "https://tekton.dev"

var _ orgdocs.Adapter[*orgdocs.TektonSource] = (*TektonAdapter)(nil)

// TektonAdapter fetches pages of the Tekton documentation site.
type TektonAdapter struct {
	BaseURL   string
	Fetcher   orgdocs.Fetcher
	Extractor orgdocs.Extractor
	Converter orgdocs.Converter
	Cache     orgdocs.Cache
}

// NewTektonAdapter creates a TektonAdapter against DefaultTektonBaseURL.
func NewTektonAdapter(fetcher orgdocs.Fetcher, extractor orgdocs.Extractor, converter orgdocs.Converter, cache orgdocs.Cache) *TektonAdapter {
	return &TektonAdapter{
		BaseURL:   DefaultTektonBaseURL,
		Fetcher:   fetcher,
		Extractor: extractor,
		Converter: converter,
		Cache:     cache,
	}
}

// TektonCacheKey returns the cache key of a Tekton source.
func TektonCacheKey(src *orgdocs.TektonSource) string {
	return "tekton:" + src.DocPath
}

func (a *TektonAdapter) docsURL() string {
	return strings.TrimSuffix(a.BaseURL, "/") + "/docs"
}

func (a *TektonAdapter) Fetch(ctx context.Context, src *orgdocs.TektonSource) (string, error) {
	key := TektonCacheKey(src)
	if content, ok := a.Cache.Get(key); ok {
		return content, nil
	}

	url := fmt.Sprintf("%s/%s/", a.docsURL(), strings.Trim(src.DocPath, "/"))
	resp, err := fetchHTML(ctx, a.Fetcher, url, acceptHTML, "Tekton docs error",
		fmt.Sprintf("Tekton documentation not found: %s", src.DocPath))
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

func (a *TektonAdapter) CheckAccess(ctx context.Context) bool {
	return probe(ctx, a.Fetcher, a.docsURL())
}
