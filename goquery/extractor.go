// Package goquery extracts the main content region of documentation pages
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/orgdocs"
)

// Main content selectors per documentation site, in preference order.
var (
	GCPSelectors       = []string{"article.devsite-article", "div.devsite-article-body", "main"}
	TektonSelectors    = []string{"main", "article", `div[class*="content"]`}
	TerraformSelectors = []string{`div[class*="markdown"]`}
)

// boilerplate is removed before a region is selected.
const boilerplate = "script, style, noscript, nav, header, footer"

// Ensure Extractor implements orgdocs.Extractor at compile time.
var _ orgdocs.Extractor = (*Extractor)(nil)

// Extractor returns the inner HTML of the first element matching one of its
// selectors. When nothing matches, the whole cleaned body is returned with
// Fallback set.
type Extractor struct {
	selectors []string
}

// NewExtractor creates an Extractor trying selectors in order.
func NewExtractor(selectors ...string) *Extractor {
	return &Extractor{selectors: selectors}
}

// Extract parses rawHTML and returns its main content region.
func (e *Extractor) Extract(rawHTML string) (*orgdocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find(boilerplate).Remove()

	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content, err := sel.Html()
		if err != nil {
			return nil, err
		}
		return &orgdocs.ExtractResult{
			Title:       title,
			ContentHTML: strings.TrimSpace(content),
		}, nil
	}

	content, err := doc.Find("body").Html()
	if err != nil {
		return nil, err
	}
	return &orgdocs.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(content),
		Fallback:    true,
	}, nil
}
