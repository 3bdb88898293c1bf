package observer_test

import (
	"context"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/observer"
)

func TestNewEvent(t *testing.T) {
	t.Parallel()

	evt := observer.NewEvent("order.paid", 42)
	assert.Equal(t, "order.paid", evt.Topic)
	assert.Equal(t, 42, evt.Payload)
	assert.False(t, evt.At.IsZero())
}

func TestEventWireFormat(t *testing.T) {
	t.Parallel()

	type orderEvent struct {
		OrderID string `json:"order_id"`
		Amount  int    `json:"amount"`
	}

	original := observer.Event[orderEvent]{
		Topic:   "order.paid",
		Payload: orderEvent{OrderID: "o-1", Amount: 1999},
		At:      time.Now().Truncate(time.Second),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded observer.Event[orderEvent]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Topic, decoded.Topic)
	assert.Equal(t, original.Payload, decoded.Payload)
	assert.True(t, original.At.Equal(decoded.At))
}

func TestMemorySubject(t *testing.T) {
	t.Parallel()

	t.Run("delivers to all observers", func(t *testing.T) {
		t.Parallel()

		subject := observer.NewMemorySubject[string](4)
		defer subject.Close()

		ctx := context.Background()
		first := subject.Subscribe(ctx)
		second := subject.Subscribe(ctx)
		require.Equal(t, 2, subject.Observers())

		require.NoError(t, subject.Publish(ctx, observer.NewEvent("greeting", "hello")))

		evt := <-first.Events(ctx)
		assert.Equal(t, "hello", evt.Payload)
		evt = <-second.Events(ctx)
		assert.Equal(t, "hello", evt.Payload)
	})

	t.Run("slow observer misses events but stays attached", func(t *testing.T) {
		t.Parallel()

		subject := observer.NewMemorySubject[int](1)
		defer subject.Close()

		ctx := context.Background()
		sub := subject.Subscribe(ctx)

		require.NoError(t, subject.Publish(ctx, observer.NewEvent("n", 1)))
		require.NoError(t, subject.Publish(ctx, observer.NewEvent("n", 2)))

		assert.Equal(t, int64(1), subject.Dropped())
		assert.Equal(t, 1, subject.Observers())

		evt := <-sub.Events(ctx)
		assert.Equal(t, 1, evt.Payload)
	})

	t.Run("context cancellation detaches the observer", func(t *testing.T) {
		t.Parallel()

		subject := observer.NewMemorySubject[int](4)
		defer subject.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := subject.Subscribe(ctx)
		require.Equal(t, 1, subject.Observers())

		cancel()
		require.Eventually(t, func() bool {
			return subject.Observers() == 0
		}, time.Second, 5*time.Millisecond)

		_, open := <-sub.Events(context.Background())
		assert.False(t, open)
	})

	t.Run("close ends all subscriptions", func(t *testing.T) {
		t.Parallel()

		subject := observer.NewMemorySubject[int](4)
		ctx := context.Background()
		sub := subject.Subscribe(ctx)

		require.NoError(t, subject.Close())
		_, open := <-sub.Events(ctx)
		assert.False(t, open)

		// Idempotent, and publishing after close is a no-op.
		require.NoError(t, subject.Close())
		require.NoError(t, subject.Publish(ctx, observer.NewEvent("n", 1)))
	})

	t.Run("subscribe after close returns closed subscription", func(t *testing.T) {
		t.Parallel()

		subject := observer.NewMemorySubject[int](4)
		require.NoError(t, subject.Close())

		sub := subject.Subscribe(context.Background())
		_, open := <-sub.Events(context.Background())
		assert.False(t, open)
	})

	t.Run("subscription close is idempotent", func(t *testing.T) {
		t.Parallel()

		subject := observer.NewMemorySubject[int](4)
		defer subject.Close()

		sub := subject.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
	})

	t.Run("subscription close detaches the observer", func(t *testing.T) {
		t.Parallel()

		subject := observer.NewMemorySubject[int](1)
		defer subject.Close()

		ctx := context.Background()
		sub := subject.Subscribe(ctx)
		require.Equal(t, 1, subject.Observers())

		require.NoError(t, sub.Close())
		assert.Equal(t, 0, subject.Observers())

		// A closed observer no longer counts as a missed delivery.
		require.NoError(t, subject.Publish(ctx, observer.NewEvent("n", 1)))
		assert.Equal(t, int64(0), subject.Dropped())
	})
}

func TestNewRedisSubject(t *testing.T) {
	t.Parallel()

	t.Run("panics on nil client", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			observer.NewRedisSubject[string](nil, "events")
		})
	})

	t.Run("panics on empty channel", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			observer.NewRedisSubject[string](nil, "")
		})
	})
}
