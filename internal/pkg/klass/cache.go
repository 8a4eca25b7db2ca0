package klass

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a loaded classification version is served
// before it is re-fetched.
const DefaultCacheTTL = time.Hour

// Cache is the process-wide, lazily populated store of classification
// indexes, one per version. Entries are read-only once loaded and refreshed
// after the TTL elapses. Concurrent loads of the same version are collapsed
// into a single upstream fetch.
type Cache struct {
	client *Client
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

type cacheEntry struct {
	index    *Index
	loadedAt time.Time
}

// NewCache creates a cache over client. A non-positive ttl falls back to
// DefaultCacheTTL.
func NewCache(client *Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the index for version, fetching and parsing the table on a
// miss or after expiry. Only one fetch per version is in flight at a time;
// other callers wait for its result.
func (c *Cache) Get(ctx context.Context, version string) (*Index, error) {
	if ix, ok := c.fresh(version); ok {
		return ix, nil
	}

	v, err, _ := c.group.Do(version, func() (any, error) {
		// A concurrent caller may have finished the load while this one was
		// queued on the flight group.
		if ix, ok := c.fresh(version); ok {
			return ix, nil
		}

		raw, err := c.client.FetchVersion(ctx, version)
		if err != nil {
			return nil, err
		}
		table, err := ParseTable(raw)
		if err != nil {
			return nil, err
		}
		ix := NewIndex(table)

		c.mu.Lock()
		c.entries[version] = cacheEntry{index: ix, loadedAt: time.Now()}
		c.mu.Unlock()

		return ix, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Index), nil
}

func (c *Cache) fresh(version string) (*Index, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[version]
	if !ok || time.Since(entry.loadedAt) >= c.ttl {
		return nil, false
	}
	return entry.index, true
}
