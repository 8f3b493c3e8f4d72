package mock

import "github.com/fwojciec/orgdocs"

var _ orgdocs.Cache = (*Cache)(nil)

// Cache is a mock implementation of orgdocs.Cache.
type Cache struct {
	GetFn        func(key string) (string, bool)
	SetFn        func(key, value string)
	InvalidateFn func(key string)
}

func (c *Cache) Get(key string) (string, bool) {
	return c.GetFn(key)
}

func (c *Cache) Set(key, value string) {
	c.SetFn(key, value)
}

func (c *Cache) Invalidate(key string) {
	c.InvalidateFn(key)
}
