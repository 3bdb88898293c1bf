package proxy

import (
	"context"
	"sync"
)

// LazyProxy is a virtual proxy: the subject is constructed on the first Get,
// not at wiring time. Useful when building the subject is expensive (opening
// connections, loading large files) and the code path that needs it may
// never run.
type LazyProxy[K comparable, V any] struct {
	construct func(ctx context.Context) (Store[K, V], error)

	mu      sync.Mutex
	subject Store[K, V]
}

// NewLazyProxy creates a proxy that builds its subject with construct on
// first use. A failed construction is retried on the next Get. Panics on a
// nil constructor.
func NewLazyProxy[K comparable, V any](construct func(ctx context.Context) (Store[K, V], error)) *LazyProxy[K, V] {
	if construct == nil {
		panic("proxy: nil subject constructor")
	}
	return &LazyProxy[K, V]{construct: construct}
}

// Get builds the subject if needed and forwards the lookup.
func (p *LazyProxy[K, V]) Get(ctx context.Context, key K) (V, error) {
	subject, err := p.resolve(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	return subject.Get(ctx, key)
}

// Constructed reports whether the subject has been built.
func (p *LazyProxy[K, V]) Constructed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.subject != nil
}

func (p *LazyProxy[K, V]) resolve(ctx context.Context) (Store[K, V], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.subject != nil {
		return p.subject, nil
	}

	subject, err := p.construct(ctx)
	if err != nil {
		return nil, err
	}
	p.subject = subject
	return subject, nil
}
