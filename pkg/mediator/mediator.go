package mediator

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("mediator: nil handler")

	// ErrEmptyTopic is returned when registering or sending with an empty
	// topic.
	ErrEmptyTopic = errors.New("mediator: empty topic")
)

// NoHandlerError is returned by Send when no handler is registered for the
// topic.
type NoHandlerError struct {
	Topic string
}

func (e NoHandlerError) Error() string {
	return fmt.Sprintf("mediator: no handler for topic %q", e.Topic)
}

// IsNoHandlerError reports whether err is a NoHandlerError.
func IsNoHandlerError(err error) bool {
	var target NoHandlerError
	return errors.As(err, &target)
}

// Handler processes a message sent to a topic.
type Handler func(ctx context.Context, msg any) error

// Mediator routes messages to handlers by topic. Safe for concurrent use.
type Mediator struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// New creates an empty mediator.
func New() *Mediator {
	return &Mediator{handlers: make(map[string][]Handler)}
}

// Register adds a handler for a topic. A topic may have any number of
// handlers; they are invoked in registration order.
func (m *Mediator) Register(topic string, h Handler) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	if h == nil {
		return ErrNilHandler
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[topic] = append(m.handlers[topic], h)
	return nil
}

// MustRegister is like Register but panics on error. For wiring at startup.
func (m *Mediator) MustRegister(topic string, h Handler) {
	if err := m.Register(topic, h); err != nil {
		panic(err)
	}
}

// Send delivers msg to every handler registered for topic, stopping at the
// first handler error or context cancellation. Returns NoHandlerError when
// the topic has no handlers.
func (m *Mediator) Send(ctx context.Context, topic string, msg any) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	m.mu.RLock()
	handlers := m.handlers[topic]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return NoHandlerError{Topic: topic}
	}

	for _, h := range handlers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h(ctx, msg); err != nil {
			return fmt.Errorf("mediator: topic %q: %w", topic, err)
		}
	}
	return nil
}

// Topics returns the topics that currently have handlers.
func (m *Mediator) Topics() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	topics := make([]string, 0, len(m.handlers))
	for t := range m.handlers {
		topics = append(topics, t)
	}
	return topics
}

// HandlerCount returns the number of handlers registered for a topic.
func (m *Mediator) HandlerCount(topic string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.handlers[topic])
}
