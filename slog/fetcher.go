package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/orgdocs"
)

// Ensure LoggingFetcher implements orgdocs.Fetcher.
var _ orgdocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of every request.
type LoggingFetcher struct {
	next   orgdocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next orgdocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, accept string) (resp *orgdocs.Response, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"status", statusCode(resp),
			"bytes", bodySize(resp),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, accept)
}

// Head delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Head(ctx context.Context, url string) (resp *orgdocs.Response, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("head",
			"url", url,
			"status", statusCode(resp),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Head(ctx, url)
}

func statusCode(resp *orgdocs.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func bodySize(resp *orgdocs.Response) int {
	if resp == nil {
		return 0
	}
	return len(resp.Body)
}
