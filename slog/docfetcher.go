package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/orgdocs"
)

// Ensure LoggingDocFetcher implements orgdocs.DocFetcher.
var _ orgdocs.DocFetcher = (*LoggingDocFetcher)(nil)

// LoggingDocFetcher wraps a DocFetcher with logging of document retrievals
// and health checks.
type LoggingDocFetcher struct {
	next   orgdocs.DocFetcher
	logger *slog.Logger
}

// NewLoggingDocFetcher creates a new LoggingDocFetcher.
func NewLoggingDocFetcher(next orgdocs.DocFetcher, logger *slog.Logger) *LoggingDocFetcher {
	return &LoggingDocFetcher{next: next, logger: logger}
}

// FetchDoc delegates to the wrapped fetcher and logs the retrieval.
func (f *LoggingDocFetcher) FetchDoc(ctx context.Context, d *orgdocs.Descriptor) (content string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"topic", topicOf(d),
			"kind", kindOf(d),
			"bytes", len(content),
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Warn("fetch doc", append(attrs, "err", err)...)
			return
		}
		f.logger.Info("fetch doc", attrs...)
	}(time.Now())
	return f.next.FetchDoc(ctx, d)
}

// CheckSourceHealth delegates to the wrapped fetcher and logs each result.
func (f *LoggingDocFetcher) CheckSourceHealth(ctx context.Context) map[orgdocs.SourceKind]bool {
	begin := time.Now()
	health := f.next.CheckSourceHealth(ctx)
	for _, kind := range orgdocs.SourceKinds() {
		ok, checked := health[kind]
		if !checked {
			continue
		}
		f.logger.Info("source health", "kind", string(kind), "ok", ok)
	}
	f.logger.Debug("health check", "sources", len(health), "duration", time.Since(begin))
	return health
}

func topicOf(d *orgdocs.Descriptor) string {
	if d == nil {
		return ""
	}
	return d.Topic
}

func kindOf(d *orgdocs.Descriptor) string {
	if d == nil || d.Source == nil {
		return ""
	}
	return string(d.Source.Kind())
}
