package orgdocs

import (
	"context"
	"net/http"
)

// Response is the result of an HTTP request to a documentation origin.
type Response struct {
	URL         string
	StatusCode  int
	Status      string // e.g. "404 Not Found"
	ContentType string
	Body        string
}

// OK reports whether the origin answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NotFound reports whether the origin confirmed the resource does not exist.
func (r *Response) NotFound() bool {
	return r.StatusCode == http.StatusNotFound
}

// Fetcher retrieves content from documentation origins over HTTP.
// Non-2xx responses are returned as responses, not errors; an error means
// the request could not be completed at all.
type Fetcher interface {
	// Fetch performs a GET request with the given Accept header.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string, accept string) (*Response, error)

	// Head performs a HEAD request. The returned response has no body.
	Head(ctx context.Context, url string) (*Response, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
