// Package http provides an HTTP-based implementation of orgdocs.Fetcher
// for fetching content from documentation origins.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/orgdocs"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher to documentation origins.
const DefaultUserAgent = "Org-Docs-MCP-Server"

// MaxBodyBytes caps the size of a response body. Larger bodies are
// rejected rather than truncated.
const MaxBodyBytes = 10 * 1024 * 1024

// Ensure Fetcher implements orgdocs.Fetcher at compile time.
var _ orgdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   orgdocs.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter rate limits requests per host.
func WithLimiter(l orgdocs.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET request and returns the response, whatever its status.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, accept string) (*orgdocs.Response, error) {
	return f.do(ctx, http.MethodGet, rawURL, accept)
}

// Head performs a HEAD request and returns the response without a body.
func (f *Fetcher) Head(ctx context.Context, rawURL string) (*orgdocs.Response, error) {
	return f.do(ctx, http.MethodHead, rawURL, "")
}

func (f *Fetcher) do(ctx context.Context, method, rawURL, accept string) (*orgdocs.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, orgdocs.Errorf(orgdocs.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out := &orgdocs.Response{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if method == http.MethodHead || !out.OK() {
		return out, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodyBytes {
		return nil, orgdocs.Errorf(orgdocs.EUNAVAILABLE, "response too large: %s exceeds %d bytes", rawURL, MaxBodyBytes)
	}
	out.Body = string(body)

	return out, nil
}
