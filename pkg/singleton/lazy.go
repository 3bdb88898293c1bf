package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Lazy holds a value of type T that is initialized on first access.
// Unlike sync.OnceValues, a failed initialization is not cached: the next
// Get runs the initializer again, which matters for resources that may come
// up later (a database that is still starting, a file that appears after
// deploy).
type Lazy[T any] struct {
	init  func() (T, error)
	mu    sync.Mutex
	ready atomic.Bool
	value T
}

// NewLazy creates a lazily-initialized value. It panics on a nil initializer,
// following the fail-fast convention for construction-time misuse.
func NewLazy[T any](init func() (T, error)) *Lazy[T] {
	if init == nil {
		panic(ErrNilInit)
	}
	return &Lazy[T]{init: init}
}

// Get returns the value, running the initializer on first use.
// Concurrent first callers serialize on an internal mutex; exactly one of
// them runs the initializer and the rest observe its result.
func (l *Lazy[T]) Get() (T, error) {
	// Fast path: already initialized, no lock needed.
	if l.ready.Load() {
		return l.value, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ready.Load() {
		return l.value, nil
	}

	v, err := l.init()
	if err != nil {
		var zero T
		return zero, err
	}

	l.value = v
	l.ready.Store(true)
	return v, nil
}

// MustGet returns the value or panics if initialization fails.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(fmt.Sprintf("singleton: initialization failed: %v", err))
	}
	return v
}

// Initialized reports whether the value has been successfully initialized.
func (l *Lazy[T]) Initialized() bool {
	return l.ready.Load()
}

// Reset discards the initialized value so the next Get re-runs the
// initializer. Intended for tests.
func (l *Lazy[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ready.Store(false)
	var zero T
	l.value = zero
}
