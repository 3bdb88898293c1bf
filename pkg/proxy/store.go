package proxy

import (
	"context"
	"errors"
)

// Store is the subject interface every proxy in this package wraps.
type Store[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, error)
}

// StoreFunc adapts a function to the Store interface.
type StoreFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f StoreFunc[K, V]) Get(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}

var (
	// ErrNotFound is returned when the subject has no value for the key.
	ErrNotFound = errors.New("proxy: key not found")

	// ErrRateLimited is returned by RateLimitedProxy when the token bucket
	// is empty. The subject is never reached.
	ErrRateLimited = errors.New("proxy: rate limit exceeded")
)
