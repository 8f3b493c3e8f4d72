// Package memory provides an in-process, time-bounded implementation of
// orgdocs.Cache.
package memory

import (
	"sync"
	"time"

	"github.com/fwojciec/orgdocs"
)

// DefaultTTL is how long fetched documents stay fresh.
const DefaultTTL = 30 * time.Minute

// Ensure Cache implements orgdocs.Cache at compile time.
var _ orgdocs.Cache = (*Cache)(nil)

// Cache is a TTL cache of normalized document text.
//
// Expiry is checked lazily on Get; there is no background sweep and no size
// bound, so keys that are never read again stay in memory until overwritten
// or invalidated.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	value    string
	storedAt time.Time
}

// NewCache creates a new Cache whose entries expire after ttl.
// A non-positive ttl uses DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		Now:     time.Now,
	}
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.Now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.value, true
}

// Set stores value under key with the current time, replacing any previous entry.
func (c *Cache) Set(key, value string) {
	now := c.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: now}
}

// Invalidate removes the entry for key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
