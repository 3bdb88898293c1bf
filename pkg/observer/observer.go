package observer

import (
	"context"
	"sync"
	"time"
)

// Event is a typed notification pushed from a subject to its observers.
type Event[T any] struct {
	Topic   string    `json:"topic"`
	Payload T         `json:"payload"`
	At      time.Time `json:"at"`
}

// NewEvent stamps a payload with a topic and the current time.
func NewEvent[T any](topic string, payload T) Event[T] {
	return Event[T]{Topic: topic, Payload: payload, At: time.Now()}
}

// Subscription is one observer's attachment to a subject.
type Subscription[T any] interface {
	// Events returns the channel delivering this observer's events. The
	// channel is closed when the subscription or its subject closes. The
	// context is unused by in-memory subscriptions and honoured by
	// networked ones.
	Events(ctx context.Context) <-chan Event[T]

	// Close detaches the observer. Idempotent.
	Close() error
}

// Subject is an observable event source.
type Subject[T any] interface {
	// Subscribe attaches a new observer. The subscription is detached
	// automatically when ctx is cancelled.
	Subscribe(ctx context.Context) Subscription[T]

	// Publish delivers an event to every attached observer. Slow observers
	// may miss events; Publish never blocks on them.
	Publish(ctx context.Context, evt Event[T]) error

	// Close detaches all observers and stops the subject. Idempotent.
	Close() error
}

// subscription is the in-memory Subscription implementation. onClose, when
// set, runs once on the first Close and lets the owning subject detach the
// observer; it is invoked outside the subscription lock.
type subscription[T any] struct {
	ch      chan Event[T]
	mu      sync.RWMutex
	closed  bool
	onClose func()
}

func newSubscription[T any](buffer int) *subscription[T] {
	return &subscription[T]{ch: make(chan Event[T], buffer)}
}

func (s *subscription[T]) Events(context.Context) <-chan Event[T] {
	return s.ch
}

func (s *subscription[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.ch)
	onClose := s.onClose
	s.mu.Unlock()

	if onClose != nil {
		onClose()
	}
	return nil
}

// offer attempts a non-blocking delivery. Returns false when the buffer is
// full or the subscription is closed.
func (s *subscription[T]) offer(evt Event[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- evt:
		return true
	default:
		return false
	}
}
