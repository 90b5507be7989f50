// Package apicache provides the in-memory TTL cache fronting the catalog
// service.
//
// Entries expire lazily: an expired entry is evicted on the next lookup, and
// no background sweep runs. Key growth is unbounded within a session.
// Concurrent identical lookups before the first fetch resolves are not
// deduplicated; two in-flight requests for the same key may both hit the
// network. This is a known limitation, not a defect.
package apicache

import (
	"sync"
	"time"
)

// DefaultTTL is the maximum entry age used when no override is supplied.
const DefaultTTL = 30 * time.Minute

type entry struct {
	data      any
	timestamp time.Time
}

// Cache is a TTL-keyed memoization store for catalog responses.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key, if present and younger than the
// cache TTL.
func (c *Cache) Get(key string) (any, bool) {
	return c.GetWithTTL(key, c.ttl)
}

// GetWithTTL returns the cached value for key using a per-call TTL override.
// An entry older than ttl is deleted and reported as a miss.
func (c *Cache) GetWithTTL(key string, ttl time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.timestamp) > ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.data, true
}

// Set stores a value under key, stamping it with the current time. An
// existing entry for the key is replaced; with overlapping fetches the last
// write wins.
func (c *Cache) Set(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, timestamp: c.now()}
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
