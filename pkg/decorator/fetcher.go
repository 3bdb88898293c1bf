package decorator

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Fetcher is the component interface every decorator in this file preserves:
// a context-aware key-to-value lookup.
type Fetcher[K comparable, V any] interface {
	Fetch(ctx context.Context, key K) (V, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f FetcherFunc[K, V]) Fetch(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}

// memoFetcher caches successful results for the decorator's lifetime.
type memoFetcher[K comparable, V any] struct {
	next  Fetcher[K, V]
	mu    sync.RWMutex
	cache map[K]V
}

// WithMemo decorates next with a memo cache: each key's first successful
// result is reused for every later fetch. Errors are never cached, so a
// failed lookup is retried on the next call.
func WithMemo[K comparable, V any](next Fetcher[K, V]) Fetcher[K, V] {
	return &memoFetcher[K, V]{
		next:  next,
		cache: make(map[K]V),
	}
}

func (m *memoFetcher[K, V]) Fetch(ctx context.Context, key K) (V, error) {
	m.mu.RLock()
	if v, ok := m.cache[key]; ok {
		m.mu.RUnlock()
		return v, nil
	}
	m.mu.RUnlock()

	v, err := m.next.Fetch(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	m.mu.Lock()
	m.cache[key] = v
	m.mu.Unlock()
	return v, nil
}

// loggingFetcher logs every fetch with its outcome.
type loggingFetcher[K comparable, V any] struct {
	next   Fetcher[K, V]
	logger *slog.Logger
}

// WithLogging decorates next with structured logging of each fetch. A nil
// logger falls back to slog.Default().
func WithLogging[K comparable, V any](next Fetcher[K, V], logger *slog.Logger) Fetcher[K, V] {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingFetcher[K, V]{next: next, logger: logger}
}

func (l *loggingFetcher[K, V]) Fetch(ctx context.Context, key K) (V, error) {
	v, err := l.next.Fetch(ctx, key)
	if err != nil {
		l.logger.ErrorContext(ctx, "fetch failed",
			slog.Any("key", key),
			slog.Any("error", err),
		)
		return v, err
	}
	l.logger.InfoContext(ctx, "fetch ok", slog.Any("key", key))
	return v, nil
}

// timingFetcher reports each fetch's duration to an observer callback.
type timingFetcher[K comparable, V any] struct {
	next    Fetcher[K, V]
	observe func(key K, d time.Duration)
}

// WithTiming decorates next with duration measurement. The observe callback
// receives the key and elapsed time of every fetch, success or failure.
func WithTiming[K comparable, V any](next Fetcher[K, V], observe func(key K, d time.Duration)) Fetcher[K, V] {
	if observe == nil {
		observe = func(K, time.Duration) {}
	}
	return &timingFetcher[K, V]{next: next, observe: observe}
}

func (t *timingFetcher[K, V]) Fetch(ctx context.Context, key K) (V, error) {
	start := time.Now()
	v, err := t.next.Fetch(ctx, key)
	t.observe(key, time.Since(start))
	return v, err
}
