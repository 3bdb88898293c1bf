package chain

import (
	"context"
	"errors"
)

var (
	// ErrUnhandled is returned when the request reaches the end of the chain
	// without any handler claiming it.
	ErrUnhandled = errors.New("chain: no handler claimed the request")
)

// Handler is one link. Handle reports whether it claimed the request; a
// claimed request stops the chain. Returning an error also stops the chain,
// claimed or not.
type Handler[T any] interface {
	Handle(ctx context.Context, req T) (handled bool, err error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[T any] func(ctx context.Context, req T) (bool, error)

func (f HandlerFunc[T]) Handle(ctx context.Context, req T) (bool, error) {
	return f(ctx, req)
}

// Chain passes requests through its handlers in order.
type Chain[T any] struct {
	handlers []Handler[T]
}

// New builds a chain from handlers in priority order. Nil handlers are
// dropped.
func New[T any](handlers ...Handler[T]) *Chain[T] {
	c := &Chain[T]{}
	for _, h := range handlers {
		if h != nil {
			c.handlers = append(c.handlers, h)
		}
	}
	return c
}

// Append adds a handler to the end of the chain and returns the chain for
// chaining during setup.
func (c *Chain[T]) Append(h Handler[T]) *Chain[T] {
	if h != nil {
		c.handlers = append(c.handlers, h)
	}
	return c
}

// Handle walks the chain. It stops at the first handler that claims the
// request or returns an error; ErrUnhandled means the chain was exhausted.
// Context cancellation is checked between links.
func (c *Chain[T]) Handle(ctx context.Context, req T) error {
	for _, h := range c.handlers {
		if err := ctx.Err(); err != nil {
			return err
		}
		handled, err := h.Handle(ctx, req)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}
	return ErrUnhandled
}

// Len returns the number of links in the chain.
func (c *Chain[T]) Len() int { return len(c.handlers) }
