package proxy

import (
	"context"
	"sync/atomic"
	"time"
)

// CachingProxy answers repeated lookups from an LRU cache, forwarding to the
// subject only on a miss. Errors from the subject are never cached.
type CachingProxy[K comparable, V any] struct {
	next   Store[K, V]
	cache  *lruCache[K, V]
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// CachingOption configures a CachingProxy.
type CachingOption func(*cachingConfig)

type cachingConfig struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// WithCapacity sets the maximum number of cached entries. Defaults to 512.
func WithCapacity(n int) CachingOption {
	return func(c *cachingConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithTTL sets how long cached entries stay valid. Zero (the default) means
// entries live until evicted by capacity.
func WithTTL(d time.Duration) CachingOption {
	return func(c *cachingConfig) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithClock overrides the time source used for TTL checks. For tests.
func WithClock(now func() time.Time) CachingOption {
	return func(c *cachingConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCachingProxy wraps a subject with an LRU cache. Panics on a nil subject.
func NewCachingProxy[K comparable, V any](next Store[K, V], opts ...CachingOption) *CachingProxy[K, V] {
	if next == nil {
		panic("proxy: nil subject store")
	}

	cfg := cachingConfig{capacity: 512}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &CachingProxy[K, V]{
		next:  next,
		cache: newLRUCache[K, V](cfg.capacity, cfg.now),
		ttl:   cfg.ttl,
	}
}

// Get returns the cached value for key or forwards to the subject and caches
// the result.
func (p *CachingProxy[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := p.cache.get(key); ok {
		p.hits.Add(1)
		return v, nil
	}

	p.misses.Add(1)
	v, err := p.next.Get(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	p.cache.put(key, v, p.ttl)
	return v, nil
}

// Invalidate drops the cached entry for key, if present. The next Get
// forwards to the subject again.
func (p *CachingProxy[K, V]) Invalidate(key K) {
	p.cache.mu.Lock()
	if elem, ok := p.cache.items[key]; ok {
		p.cache.remove(elem)
	}
	p.cache.mu.Unlock()
}

// Hits and Misses report cache effectiveness counters.
func (p *CachingProxy[K, V]) Hits() int64   { return p.hits.Load() }
func (p *CachingProxy[K, V]) Misses() int64 { return p.misses.Load() }

// Len returns the number of currently cached entries.
func (p *CachingProxy[K, V]) Len() int { return p.cache.len() }
