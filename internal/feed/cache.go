package feed

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultTTL is the freshness window for cached feed rows.
const DefaultTTL = 60 * time.Second

type cacheEntry struct {
	fetchedAt time.Time
	rows      []Row
}

// Cache is a single-slot, time-windowed cache over a Source.
//
// Reads within the freshness window return the cached rows verbatim with
// no network access. A read outside the window fetches, then replaces the
// slot atomically so no reader ever sees a half-updated cache. There is
// deliberately no lock around the fetch itself: concurrent misses may both
// fetch, which is harmless because the fetch is idempotent. A failed fetch
// propagates its error; the stale slot is never served past the window.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time
	slot   atomic.Pointer[cacheEntry]
}

// NewCache creates a cache over source with the given freshness window.
func NewCache(source Source, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{source: source, ttl: ttl, now: time.Now}
}

// Rows returns the feed rows, fetching if the cached slot is absent or
// older than the freshness window.
func (c *Cache) Rows(ctx context.Context) ([]Row, error) {
	if entry := c.slot.Load(); entry != nil && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.rows, nil
	}

	rows, err := c.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.slot.Store(&cacheEntry{fetchedAt: c.now(), rows: rows})
	return rows, nil
}
