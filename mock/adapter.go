package mock

import (
	"context"

	"github.com/fwojciec/orgdocs"
)

var (
	_ orgdocs.Adapter[*orgdocs.GitHubSource] = (*Adapter[*orgdocs.GitHubSource])(nil)
	_ orgdocs.DocFetcher                     = (*DocFetcher)(nil)
)

// Adapter is a mock implementation of orgdocs.Adapter for any source type.
type Adapter[S orgdocs.Source] struct {
	FetchFn       func(ctx context.Context, src S) (string, error)
	CheckAccessFn func(ctx context.Context) bool
}

func (a *Adapter[S]) Fetch(ctx context.Context, src S) (string, error) {
	return a.FetchFn(ctx, src)
}

func (a *Adapter[S]) CheckAccess(ctx context.Context) bool {
	return a.CheckAccessFn(ctx)
}

// DocFetcher is a mock implementation of orgdocs.DocFetcher.
type DocFetcher struct {
	FetchDocFn          func(ctx context.Context, d *orgdocs.Descriptor) (string, error)
	CheckSourceHealthFn func(ctx context.Context) map[orgdocs.SourceKind]bool
}

func (f *DocFetcher) FetchDoc(ctx context.Context, d *orgdocs.Descriptor) (string, error) {
	return f.FetchDocFn(ctx, d)
}

func (f *DocFetcher) CheckSourceHealth(ctx context.Context) map[orgdocs.SourceKind]bool {
	return f.CheckSourceHealthFn(ctx)
}
