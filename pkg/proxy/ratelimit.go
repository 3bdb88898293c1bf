package proxy

import (
	"context"
	"sync"
	"time"
)

// RateLimitedProxy is a protection proxy: a token bucket ahead of the
// subject. Requests that find the bucket empty fail fast with ErrRateLimited
// and never reach the subject.
type RateLimitedProxy[K comparable, V any] struct {
	next Store[K, V]

	mu           sync.Mutex
	capacity     float64
	refillPerSec float64
	tokens       float64
	last         time.Time
	now          func() time.Time
}

// RateLimitOption configures a RateLimitedProxy.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	now func() time.Time
}

// WithRateLimitClock overrides the time source used for refill. For tests.
func WithRateLimitClock(now func() time.Time) RateLimitOption {
	return func(c *rateLimitConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewRateLimitedProxy wraps a subject with a token bucket holding capacity
// tokens and refilling at refillPerSec tokens per second. The bucket starts
// full. Panics on a nil subject or non-positive parameters.
func NewRateLimitedProxy[K comparable, V any](next Store[K, V], capacity int, refillPerSec float64, opts ...RateLimitOption) *RateLimitedProxy[K, V] {
	if next == nil {
		panic("proxy: nil subject store")
	}
	if capacity <= 0 || refillPerSec <= 0 {
		panic("proxy: rate limit capacity and refill rate must be positive")
	}

	cfg := rateLimitConfig{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &RateLimitedProxy[K, V]{
		next:         next,
		capacity:     float64(capacity),
		refillPerSec: refillPerSec,
		tokens:       float64(capacity),
		last:         cfg.now(),
		now:          cfg.now,
	}
}

// Get forwards to the subject if a token is available, otherwise returns
// ErrRateLimited.
func (p *RateLimitedProxy[K, V]) Get(ctx context.Context, key K) (V, error) {
	if !p.allow() {
		var zero V
		return zero, ErrRateLimited
	}
	return p.next.Get(ctx, key)
}

// Tokens reports the current token count, refreshed to now. Mainly for
// observability and tests.
func (p *RateLimitedProxy[K, V]) Tokens() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refill()
	return p.tokens
}

func (p *RateLimitedProxy[K, V]) allow() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.refill()
	if p.tokens < 1 {
		return false
	}
	p.tokens--
	return true
}

// Must be called with the lock held.
func (p *RateLimitedProxy[K, V]) refill() {
	now := p.now()
	elapsed := now.Sub(p.last).Seconds()
	if elapsed <= 0 {
		return
	}
	p.tokens = min(p.capacity, p.tokens+elapsed*p.refillPerSec)
	p.last = now
}
