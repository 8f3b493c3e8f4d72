package mock

import (
	"context"

	"github.com/fwojciec/orgdocs"
)

var (
	_ orgdocs.Fetcher       = (*Fetcher)(nil)
	_ orgdocs.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of orgdocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, accept string) (*orgdocs.Response, error)
	HeadFn  func(ctx context.Context, url string) (*orgdocs.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, accept string) (*orgdocs.Response, error) {
	return f.FetchFn(ctx, url, accept)
}

func (f *Fetcher) Head(ctx context.Context, url string) (*orgdocs.Response, error) {
	return f.HeadFn(ctx, url)
}

// DomainLimiter is a mock implementation of orgdocs.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
