// Package source implements the HTTP documentation adapters and the router
// that dispatches descriptors to them.
package source

import (
	"context"
	"strings"

	"github.com/fwojciec/orgdocs"
)

const acceptHTML = "text/html"

// fetchHTML retrieves a page from an origin. A 404 is reported as
// ENOTFOUND with notFound as message; any other failure as EUNAVAILABLE
// prefixed with origin.
func fetchHTML(ctx context.Context, f orgdocs.Fetcher, url, accept, origin, notFound string) (*orgdocs.Response, error) {
	resp, err := f.Fetch(ctx, url, accept)
	if err != nil {
		return nil, orgdocs.Errorf(orgdocs.EUNAVAILABLE, "%s: %v", origin, err)
	}
	if resp.NotFound() {
		return nil, orgdocs.Errorf(orgdocs.ENOTFOUND, "%s", notFound)
	}
	if !resp.OK() {
		return nil, orgdocs.Errorf(orgdocs.EUNAVAILABLE, "%s: %s", origin, resp.Status)
	}
	return resp, nil
}

// toMarkdown converts extracted HTML, treating an empty region as an empty
// document.
func toMarkdown(c orgdocs.Converter, html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	return c.Convert(html)
}

// extractMarkdown converts the main region of an HTML page. A blank page
// is an empty document.
func extractMarkdown(e orgdocs.Extractor, c orgdocs.Converter, body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	result, err := e.Extract(body)
	if err != nil {
		return "", err
	}
	return toMarkdown(c, result.ContentHTML)
}

// probe reports whether a HEAD request to url succeeds with a 2xx status.
func probe(ctx context.Context, f orgdocs.Fetcher, url string) bool {
	resp, err := f.Head(ctx, url)
	if err != nil {
		return false
	}
	return resp.OK()
}
