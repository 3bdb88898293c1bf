package singleton_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/singleton"
)

func TestLazy_Basic(t *testing.T) {
	t.Run("initializes on first get", func(t *testing.T) {
		calls := 0
		l := singleton.NewLazy(func() (string, error) {
			calls++
			return "value", nil
		})

		assert.False(t, l.Initialized())

		v, err := l.Get()
		require.NoError(t, err)
		assert.Equal(t, "value", v)
		assert.True(t, l.Initialized())
		assert.Equal(t, 1, calls)
	})

	t.Run("subsequent gets reuse the value", func(t *testing.T) {
		calls := 0
		l := singleton.NewLazy(func() (int, error) {
			calls++
			return 42, nil
		})

		for range 5 {
			v, err := l.Get()
			require.NoError(t, err)
			assert.Equal(t, 42, v)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("nil initializer panics", func(t *testing.T) {
		assert.Panics(t, func() {
			singleton.NewLazy[int](nil)
		})
	})
}

func TestLazy_FailedInitRetries(t *testing.T) {
	calls := 0
	boom := errors.New("not ready yet")
	l := singleton.NewLazy(func() (string, error) {
		calls++
		if calls < 3 {
			return "", boom
		}
		return "finally", nil
	})

	_, err := l.Get()
	assert.ErrorIs(t, err, boom)
	assert.False(t, l.Initialized())

	_, err = l.Get()
	assert.ErrorIs(t, err, boom)

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, "finally", v)
	assert.Equal(t, 3, calls)

	// Success is sticky: no further initializer runs.
	_, err = l.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestLazy_Concurrent(t *testing.T) {
	var calls atomic.Int32
	l := singleton.NewLazy(func() (int, error) {
		calls.Add(1)
		return 7, nil
	})

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.Get()
			assert.NoError(t, err)
			assert.Equal(t, 7, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "initializer must run exactly once")
}

func TestLazy_Reset(t *testing.T) {
	calls := 0
	l := singleton.NewLazy(func() (int, error) {
		calls++
		return calls, nil
	})

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	l.Reset()
	assert.False(t, l.Initialized())

	v, err = l.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestLazy_MustGet(t *testing.T) {
	t.Run("returns value", func(t *testing.T) {
		l := singleton.NewLazy(func() (string, error) { return "ok", nil })
		assert.Equal(t, "ok", l.MustGet())
	})

	t.Run("panics on error", func(t *testing.T) {
		l := singleton.NewLazy(func() (string, error) {
			return "", errors.New("broken")
		})
		assert.Panics(t, func() { l.MustGet() })
	})
}
