package factory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/factory"
)

// transport is the product interface used throughout the tests.
type transport interface {
	Send(ctx context.Context, to, msg string) error
}

type emailTransport struct{ from string }

func (t *emailTransport) Send(ctx context.Context, to, msg string) error { return nil }

type smsTransport struct{}

func (t *smsTransport) Send(ctx context.Context, to, msg string) error { return nil }

func TestRegistry_RegisterAndNew(t *testing.T) {
	t.Run("creates registered product", func(t *testing.T) {
		reg := factory.NewRegistry[transport]()
		require.NoError(t, reg.Register("email", func() (transport, error) {
			return &emailTransport{from: "noreply@example.com"}, nil
		}))

		tr, err := reg.New("email")
		require.NoError(t, err)
		assert.IsType(t, &emailTransport{}, tr)
	})

	t.Run("each call runs the constructor", func(t *testing.T) {
		reg := factory.NewRegistry[transport]()
		calls := 0
		reg.MustRegister("sms", func() (transport, error) {
			calls++
			return &smsTransport{}, nil
		})

		a := reg.MustNew("sms")
		b := reg.MustNew("sms")

		assert.NotSame(t, a, b)
		assert.Equal(t, 2, calls)
	})

	t.Run("constructor error propagates", func(t *testing.T) {
		reg := factory.NewRegistry[transport]()
		boom := errors.New("missing credentials")
		reg.MustRegister("push", func() (transport, error) { return nil, boom })

		_, err := reg.New("push")
		assert.ErrorIs(t, err, boom)
	})
}

func TestRegistry_Validation(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		reg := factory.NewRegistry[transport]()
		err := reg.Register("", func() (transport, error) { return &smsTransport{}, nil })
		assert.ErrorIs(t, err, factory.ErrEmptyName)
	})

	t.Run("nil constructor", func(t *testing.T) {
		reg := factory.NewRegistry[transport]()
		err := reg.Register("email", nil)
		assert.ErrorIs(t, err, factory.ErrNilConstructor)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		reg := factory.NewRegistry[transport]()
		ctor := func() (transport, error) { return &smsTransport{}, nil }
		require.NoError(t, reg.Register("sms", ctor))

		err := reg.Register("sms", ctor)
		require.Error(t, err)
		assert.True(t, factory.IsAlreadyRegisteredError(err))

		var are *factory.AlreadyRegisteredError
		require.ErrorAs(t, err, &are)
		assert.Equal(t, "sms", are.Name)
	})

	t.Run("must register panics on duplicate", func(t *testing.T) {
		reg := factory.NewRegistry[transport]()
		ctor := func() (transport, error) { return &smsTransport{}, nil }
		reg.MustRegister("sms", ctor)

		assert.Panics(t, func() { reg.MustRegister("sms", ctor) })
	})
}

func TestRegistry_UnknownName(t *testing.T) {
	reg := factory.NewRegistry[transport]()
	reg.MustRegister("email", func() (transport, error) { return &emailTransport{}, nil })
	reg.MustRegister("sms", func() (transport, error) { return &smsTransport{}, nil })

	_, err := reg.New("carrier-pigeon")
	require.Error(t, err)
	assert.True(t, factory.IsUnknownNameError(err))

	var une *factory.UnknownNameError
	require.ErrorAs(t, err, &une)
	assert.Equal(t, "carrier-pigeon", une.Name)
	assert.Equal(t, []string{"email", "sms"}, une.Known)
}

func TestRegistry_Introspection(t *testing.T) {
	reg := factory.NewRegistry[transport]()
	reg.MustRegister("sms", func() (transport, error) { return &smsTransport{}, nil })
	reg.MustRegister("email", func() (transport, error) { return &emailTransport{}, nil })

	assert.Equal(t, []string{"email", "sms"}, reg.Names(), "names are sorted")
	assert.Equal(t, 2, reg.Len())
	assert.True(t, reg.Has("email"))
	assert.False(t, reg.Has("fax"))
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := factory.NewRegistry[int]()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = reg.Register(string(rune('a'+n)), func() (int, error) { return n, nil })
		}(i)
	}
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reg.Names()
			_ = reg.Has("a")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, reg.Len())
}
