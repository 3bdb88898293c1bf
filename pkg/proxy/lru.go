package proxy

import (
	"container/list"
	"sync"
	"time"
)

type lruEntry[K comparable, V any] struct {
	key     K
	value   V
	expires time.Time // zero means no expiry
}

// lruCache is the caching proxy's backing store: a mutex-guarded LRU with
// optional per-entry expiry. Expired entries are dropped lazily on access.
type lruCache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time
}

func newLRUCache[K comparable, V any](capacity int, now func() time.Time) *lruCache[K, V] {
	if now == nil {
		now = time.Now
	}
	return &lruCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
		now:      now,
	}
}

func (c *lruCache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}

	entry := elem.Value.(*lruEntry[K, V])
	if !entry.expires.IsZero() && c.now().After(entry.expires) {
		c.remove(elem)
		return zero, false
	}

	c.eviction.MoveToFront(elem)
	return entry.value, true
}

func (c *lruCache[K, V]) put(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expires time.Time
	if ttl > 0 {
		expires = c.now().Add(ttl)
	}

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		entry.value = value
		entry.expires = expires
		return
	}

	elem := c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value, expires: expires})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.remove(oldest)
		}
	}
}

func (c *lruCache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Must be called with the lock held.
func (c *lruCache[K, V]) remove(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)
}
