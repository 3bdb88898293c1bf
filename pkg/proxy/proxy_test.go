package proxy_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/proxy"
)

// countingStore records how many lookups reach the subject.
type countingStore struct {
	calls atomic.Int64
	fail  map[string]error
}

func (s *countingStore) Get(ctx context.Context, key string) (string, error) {
	s.calls.Add(1)
	if err, ok := s.fail[key]; ok {
		return "", err
	}
	return "value:" + key, nil
}

func TestCachingProxy(t *testing.T) {
	ctx := context.Background()

	t.Run("second lookup served from cache", func(t *testing.T) {
		subject := &countingStore{}
		p := proxy.NewCachingProxy[string, string](subject)

		for range 3 {
			v, err := p.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, "value:a", v)
		}

		assert.Equal(t, int64(1), subject.calls.Load())
		assert.Equal(t, int64(2), p.Hits())
		assert.Equal(t, int64(1), p.Misses())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		boom := errors.New("upstream down")
		subject := &countingStore{fail: map[string]error{"bad": boom}}
		p := proxy.NewCachingProxy[string, string](subject)

		_, err := p.Get(ctx, "bad")
		assert.ErrorIs(t, err, boom)
		_, err = p.Get(ctx, "bad")
		assert.ErrorIs(t, err, boom)

		assert.Equal(t, int64(2), subject.calls.Load())
	})

	t.Run("capacity evicts least recently used", func(t *testing.T) {
		subject := &countingStore{}
		p := proxy.NewCachingProxy[string, string](subject, proxy.WithCapacity(2))

		_, _ = p.Get(ctx, "a")
		_, _ = p.Get(ctx, "b")
		_, _ = p.Get(ctx, "a") // refresh a
		_, _ = p.Get(ctx, "c") // evicts b

		subject.calls.Store(0)
		_, _ = p.Get(ctx, "a")
		_, _ = p.Get(ctx, "c")
		assert.Equal(t, int64(0), subject.calls.Load(), "a and c still cached")

		_, _ = p.Get(ctx, "b")
		assert.Equal(t, int64(1), subject.calls.Load(), "b was evicted")
	})

	t.Run("ttl expires entries", func(t *testing.T) {
		current := time.Now()
		clock := func() time.Time { return current }

		subject := &countingStore{}
		p := proxy.NewCachingProxy[string, string](subject,
			proxy.WithTTL(time.Minute),
			proxy.WithClock(clock),
		)

		_, _ = p.Get(ctx, "a")
		_, _ = p.Get(ctx, "a")
		assert.Equal(t, int64(1), subject.calls.Load())

		current = current.Add(2 * time.Minute)
		_, _ = p.Get(ctx, "a")
		assert.Equal(t, int64(2), subject.calls.Load(), "expired entry refetched")
	})

	t.Run("invalidate forces refetch", func(t *testing.T) {
		subject := &countingStore{}
		p := proxy.NewCachingProxy[string, string](subject)

		_, _ = p.Get(ctx, "a")
		p.Invalidate("a")
		_, _ = p.Get(ctx, "a")

		assert.Equal(t, int64(2), subject.calls.Load())
	})

	t.Run("nil subject panics", func(t *testing.T) {
		assert.Panics(t, func() {
			proxy.NewCachingProxy[string, string](nil)
		})
	})
}

func TestRateLimitedProxy(t *testing.T) {
	ctx := context.Background()

	t.Run("requests beyond capacity rejected", func(t *testing.T) {
		current := time.Now()
		clock := func() time.Time { return current }

		subject := &countingStore{}
		p := proxy.NewRateLimitedProxy[string, string](subject, 3, 1, proxy.WithRateLimitClock(clock))

		for range 3 {
			_, err := p.Get(ctx, "a")
			require.NoError(t, err)
		}

		_, err := p.Get(ctx, "a")
		assert.ErrorIs(t, err, proxy.ErrRateLimited)
		assert.Equal(t, int64(3), subject.calls.Load(), "rejected request never reaches the subject")
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		current := time.Now()
		clock := func() time.Time { return current }

		subject := &countingStore{}
		p := proxy.NewRateLimitedProxy[string, string](subject, 2, 1, proxy.WithRateLimitClock(clock))

		_, _ = p.Get(ctx, "a")
		_, _ = p.Get(ctx, "a")
		_, err := p.Get(ctx, "a")
		require.ErrorIs(t, err, proxy.ErrRateLimited)

		current = current.Add(1500 * time.Millisecond)
		_, err = p.Get(ctx, "a")
		assert.NoError(t, err, "1.5 tokens refilled")

		_, err = p.Get(ctx, "a")
		assert.ErrorIs(t, err, proxy.ErrRateLimited)
	})

	t.Run("refill never exceeds capacity", func(t *testing.T) {
		current := time.Now()
		clock := func() time.Time { return current }

		p := proxy.NewRateLimitedProxy[string, string](&countingStore{}, 2, 100, proxy.WithRateLimitClock(clock))

		current = current.Add(time.Hour)
		assert.InDelta(t, 2.0, p.Tokens(), 0.001)
	})

	t.Run("invalid parameters panic", func(t *testing.T) {
		assert.Panics(t, func() {
			proxy.NewRateLimitedProxy[string, string](&countingStore{}, 0, 1)
		})
		assert.Panics(t, func() {
			proxy.NewRateLimitedProxy[string, string](&countingStore{}, 1, 0)
		})
	})
}

func TestLazyProxy(t *testing.T) {
	ctx := context.Background()

	t.Run("subject built on first get only", func(t *testing.T) {
		constructed := 0
		subject := &countingStore{}
		p := proxy.NewLazyProxy(func(ctx context.Context) (proxy.Store[string, string], error) {
			constructed++
			return subject, nil
		})

		assert.False(t, p.Constructed())
		assert.Equal(t, 0, constructed)

		v, err := p.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "value:a", v)
		assert.True(t, p.Constructed())

		_, _ = p.Get(ctx, "b")
		assert.Equal(t, 1, constructed)
	})

	t.Run("failed construction retried", func(t *testing.T) {
		attempts := 0
		p := proxy.NewLazyProxy(func(ctx context.Context) (proxy.Store[string, string], error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("connect refused")
			}
			return &countingStore{}, nil
		})

		_, err := p.Get(ctx, "a")
		require.Error(t, err)
		assert.False(t, p.Constructed())

		_, err = p.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})
}

func TestProxyComposition(t *testing.T) {
	// Proxies share the Store interface, so they stack: rate limit first,
	// then cache, so cache hits are not charged against the bucket.
	ctx := context.Background()
	current := time.Now()
	clock := func() time.Time { return current }

	subject := &countingStore{}
	limited := proxy.NewRateLimitedProxy[string, string](subject, 2, 1, proxy.WithRateLimitClock(clock))
	store := proxy.NewCachingProxy[string, string](limited)

	for range 10 {
		v, err := store.Get(ctx, "hot")
		require.NoError(t, err)
		assert.Equal(t, "value:hot", v)
	}

	assert.Equal(t, int64(1), subject.calls.Load())
}
