// Package trafilatura extracts the main content of arbitrary web pages.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/orgdocs"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements orgdocs.Extractor at compile time.
var _ orgdocs.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML pages
// whose layout is not known in advance.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. When trafilatura
// finds nothing, the whole body is returned with Fallback set.
func (e *Extractor) Extract(rawHTML string) (*orgdocs.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err == nil && result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(contentHTML) != "" {
			return &orgdocs.ExtractResult{
				Title:       result.Metadata.Title,
				ContentHTML: contentHTML,
			}, nil
		}
	}

	return wholeDocument(rawHTML)
}

func wholeDocument(rawHTML string) (*orgdocs.ExtractResult, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	out := &orgdocs.ExtractResult{Fallback: true}
	if title := findElement(doc, atom.Title); title != nil && title.FirstChild != nil {
		out.Title = strings.TrimSpace(title.FirstChild.Data)
	}

	root := doc
	if body := findElement(doc, atom.Body); body != nil {
		root = body
	}
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return nil, err
		}
	}
	out.ContentHTML = buf.String()
	return out, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
