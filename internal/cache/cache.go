// Package cache is the injected TTL cache collaborator. The core pipeline
// stays pure; whoever needs memoization (course works per request, teacher
// profiles that 429 when re-fetched) takes a *Cache explicitly instead of
// relying on ambient global state.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Cache struct {
	c *gocache.Cache
}

// New creates a cache with the given default TTL. Expired entries are swept
// at twice the TTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{c: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (s *Cache) Get(key string) (any, bool) {
	return s.c.Get(key)
}

// Set stores value under key. A zero ttl uses the cache's default.
func (s *Cache) Set(key string, value any, ttl time.Duration) {
	s.c.Set(key, value, ttl)
}

func (s *Cache) Delete(key string) {
	s.c.Delete(key)
}

func (s *Cache) Flush() {
	s.c.Flush()
}
