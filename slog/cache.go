package slog

import (
	"log/slog"

	"github.com/fwojciec/orgdocs"
)

// Ensure LoggingCache implements orgdocs.Cache.
var _ orgdocs.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with debug logging of hits and misses.
type LoggingCache struct {
	next   orgdocs.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next orgdocs.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs whether the key was found.
func (c *LoggingCache) Get(key string) (string, bool) {
	value, ok := c.next.Get(key)
	if ok {
		c.logger.Debug("cache hit", "key", key, "bytes", len(value))
	} else {
		c.logger.Debug("cache miss", "key", key)
	}
	return value, ok
}

// Set delegates to the wrapped cache.
func (c *LoggingCache) Set(key, value string) {
	c.logger.Debug("cache set", "key", key, "bytes", len(value))
	c.next.Set(key, value)
}

// Invalidate delegates to the wrapped cache.
func (c *LoggingCache) Invalidate(key string) {
	c.logger.Debug("cache invalidate", "key", key)
	c.next.Invalidate(key)
}
