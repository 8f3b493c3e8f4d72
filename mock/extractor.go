package mock

import "github.com/fwojciec/orgdocs"

var _ orgdocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of orgdocs.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*orgdocs.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*orgdocs.ExtractResult, error) {
	return e.ExtractFn(html)
}
