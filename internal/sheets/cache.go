// Package sheets implements the spreadsheet CSV proxy: a tiered
// resolution chain (structured API read, retried anonymous export
// fetch, static backup, hardcoded fallback) behind a time-bounded
// in-memory cache. The upstream export endpoint is not a committed API
// and intermittently serves consent/login HTML instead of data; the
// chain exists so that never surfaces to a client.
package sheets

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a resolved CSV document is served from
// memory before the tiers run again.
const DefaultCacheTTL = 30 * time.Minute

// Cache is an explicit, injectable cache for one CSV document. It is
// safe for concurrent use. Concurrent misses may each run the tier
// chain; the cache only guarantees the entry itself is consistent.
type Cache struct {
	mu       sync.Mutex
	csv      string
	source   string
	storedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

// NewCache creates a Cache with the given TTL. A non-positive TTL falls
// back to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached CSV and the tier that produced it, or ok=false
// when the cache is empty or expired.
func (c *Cache) Get() (csv, source string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.csv == "" || c.now().Sub(c.storedAt) >= c.ttl {
		return "", "", false
	}
	return c.csv, c.source, true
}

// Set stores a CSV document and the tier that produced it.
func (c *Cache) Set(csv, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.csv = csv
	c.source = source
	c.storedAt = c.now()
}
