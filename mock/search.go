package mock

import (
	"context"

	"github.com/fwojciec/orgdocs"
)

var (
	_ orgdocs.Searcher  = (*Searcher)(nil)
	_ orgdocs.Previewer = (*Previewer)(nil)
)

// Searcher is a mock implementation of orgdocs.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]orgdocs.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]orgdocs.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}

// Previewer is a mock implementation of orgdocs.Previewer.
type Previewer struct {
	PreviewFn func(ctx context.Context, url string) (*orgdocs.Preview, error)
}

func (p *Previewer) Preview(ctx context.Context, url string) (*orgdocs.Preview, error) {
	return p.PreviewFn(ctx, url)
}
