package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/orgdocs"
)

// DefaultTerraformBaseURL is the Terraform registry origin.
const DefaultTerraformBaseURL = "https://registry.terraform.io"

var _ orgdocs.Adapter[*orgdocs.TerraformSource] = (*TerraformAdapter)(nil)

// TerraformAdapter fetches resource pages of HashiCorp providers from the
// Terraform registry.
type TerraformAdapter struct {
	BaseURL   string
	Fetcher   orgdocs.Fetcher
	Extractor orgdocs.Extractor
	Converter orgdocs.Converter
	Cache     orgdocs.Cache
}

// NewTerraformAdapter creates a TerraformAdapter against DefaultTerraformBaseURL.
func NewTerraformAdapter(fetcher orgdocs.Fetcher, extractor orgdocs.Extractor, converter orgdocs.Converter, cache orgdocs.Cache) *TerraformAdapter {
	return &TerraformAdapter{
		BaseURL:   DefaultTerraformBaseURL,
		Fetcher:   fetcher,
		Extractor: extractor,
		Converter: converter,
		Cache:     cache,
	}
}

// TerraformCacheKey returns the cache key of a Terraform source.
func TerraformCacheKey(src *orgdocs.TerraformSource) string {
	return fmt.Sprintf("terraform:%s:%s", src.Provider, src.Resource)
}

// ResourceName returns the registry page name of a resource: the resource
// type without its provider prefix, so google_storage_bucket becomes
// storage_bucket.
func ResourceName(src *orgdocs.TerraformSource) string {
	name := strings.Replace(src.Resource, src.Provider+"_", "", 1)
	return strings.Replace(name, "google_", "", 1)
}

func (a *TerraformAdapter) resourceURL(src *orgdocs.TerraformSource) string {
	return fmt.Sprintf("%s/providers/hashicorp/%s/latest/docs/resources/%s",
		strings.TrimSuffix(a.BaseURL, "/"), src.Provider, ResourceName(src))
}

func (a *TerraformAdapter) Fetch(ctx context.Context, src *orgdocs.TerraformSource) (string, error) {
	key := TerraformCacheKey(src)
	if content, ok := a.Cache.Get(key); ok {
		return content, nil
	}

	url := a.resourceURL(src)
	resp, err := fetchHTML(ctx, a.Fetcher, url, acceptHTML, "Terraform registry error",
		fmt.Sprintf("Terraform resource not found: %s/%s", src.Provider, src.Resource))
	if err != nil {
		return "", err
	}

	var content string
	result, err := a.Extractor.Extract(resp.Body)
	if err != nil || result.Fallback {
		content = stub(src.Resource, url)
	} else if content, err = toMarkdown(a.Converter, result.ContentHTML); err != nil {
		return "", err
	}

	a.Cache.Set(key, content)
	return content, nil
}

// stub is returned when the registry page has no recognizable markdown
// region, which happens when the page is rendered client-side.
func stub(resource, url string) string {
	return fmt.Sprintf("# %s\n\nTerraform resource documentation.\n\nFor full documentation, visit:\n%s\n", resource, url)
}

// CheckAccess probes the google provider page.
func (a *TerraformAdapter) CheckAccess(ctx context.Context) bool {
	return probe(ctx, a.Fetcher, strings.TrimSuffix(a.BaseURL, "/")+"/providers/hashicorp/google")
}
