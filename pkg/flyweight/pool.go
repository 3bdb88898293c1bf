package flyweight

import (
	"sync"
	"sync/atomic"
)

// Pool interns values of type V by comparable key K. Values handed out by
// Get are shared across all callers and must be treated as immutable.
type Pool[K comparable, V any] struct {
	factory func(K) V
	items   sync.Map
	hits    atomic.Int64
	misses  atomic.Int64
}

// Stats is a snapshot of pool effectiveness counters.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// NewPool creates an intern pool backed by the given factory. Panics on a
// nil factory.
func NewPool[K comparable, V any](factory func(K) V) *Pool[K, V] {
	if factory == nil {
		panic("flyweight: nil factory")
	}
	return &Pool[K, V]{factory: factory}
}

// Get returns the shared value for key, building it on first request.
func (p *Pool[K, V]) Get(key K) V {
	if v, ok := p.items.Load(key); ok {
		p.hits.Add(1)
		return v.(V)
	}

	// Racing first accessors may each run the factory, but LoadOrStore
	// guarantees a single winner; losers discard their construction and
	// share the stored value.
	created := p.factory(key)
	actual, loaded := p.items.LoadOrStore(key, created)
	if loaded {
		p.hits.Add(1)
	} else {
		p.misses.Add(1)
	}
	return actual.(V)
}

// Contains reports whether a value is already interned for key.
func (p *Pool[K, V]) Contains(key K) bool {
	_, ok := p.items.Load(key)
	return ok
}

// Len returns the number of interned values.
func (p *Pool[K, V]) Len() int {
	n := 0
	p.items.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Stats returns a snapshot of the hit/miss counters and the pool size.
func (p *Pool[K, V]) Stats() Stats {
	return Stats{
		Hits:   p.hits.Load(),
		Misses: p.misses.Load(),
		Size:   p.Len(),
	}
}
