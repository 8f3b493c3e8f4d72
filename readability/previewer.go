// Package readability summarizes web pages before they are added as
// user documentation.
package readability

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/orgdocs"
	"github.com/go-shiori/go-readability"
)

// Ensure Previewer implements orgdocs.Previewer at compile time.
var _ orgdocs.Previewer = (*Previewer)(nil)

const acceptAny = "text/html, text/markdown, text/plain, */*"

// Previewer fetches a page and summarizes it with go-readability.
// Previews are never cached.
type Previewer struct {
	Fetcher   orgdocs.Fetcher
	Converter orgdocs.Converter
}

// NewPreviewer creates a new Previewer.
func NewPreviewer(fetcher orgdocs.Fetcher, converter orgdocs.Converter) *Previewer {
	return &Previewer{Fetcher: fetcher, Converter: converter}
}

// Preview returns the title, description and the first PreviewLength
// characters of the page's Markdown.
func (p *Previewer) Preview(ctx context.Context, rawURL string) (*orgdocs.Preview, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "preview requires an http(s) URL, got %q", rawURL)
	}

	resp, err := p.Fetcher.Fetch(ctx, rawURL, acceptAny)
	if err != nil {
		return nil, orgdocs.Errorf(orgdocs.EUNAVAILABLE, "Failed to fetch %s: %v", rawURL, err)
	}
	if resp.NotFound() {
		return nil, orgdocs.Errorf(orgdocs.ENOTFOUND, "Failed to fetch %s: %s", rawURL, resp.Status)
	}
	if !resp.OK() {
		return nil, orgdocs.Errorf(orgdocs.EUNAVAILABLE, "Failed to fetch %s: %s", rawURL, resp.Status)
	}

	preview := &orgdocs.Preview{URL: rawURL, Title: orgdocs.UntitledDocument}

	var text string
	if strings.Contains(resp.ContentType, "text/html") {
		article, err := readability.FromReader(strings.NewReader(resp.Body), u)
		if err == nil {
			if article.Title != "" {
				preview.Title = article.Title
			}
			preview.Description = strings.TrimSpace(article.Excerpt)
		}
		text, err = p.Converter.Convert(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		text = resp.Body
		first, _, _ := strings.Cut(text, "\n")
		if first = strings.TrimSpace(first); strings.HasPrefix(first, "#") {
			preview.Title = strings.TrimSpace(strings.TrimLeft(first, "#"))
		}
	}

	preview.Title = strings.Join(strings.Fields(preview.Title), " ")
	preview.ContentPreview = strings.TrimSpace(truncate(text, orgdocs.PreviewLength))
	return preview, nil
}

// truncate cuts s to n characters, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
