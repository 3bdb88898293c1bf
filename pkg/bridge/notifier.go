package bridge

import (
	"context"
	"fmt"
)

// Notifier is the abstraction side of the bridge: shaping and sending a
// message through whatever transport it was composed with.
type Notifier struct {
	transport Transport
}

// NewNotifier creates a notifier over the given transport. Panics on nil,
// following the fail-fast convention for wiring mistakes.
func NewNotifier(t Transport) *Notifier {
	if t == nil {
		panic(ErrNilTransport)
	}
	return &Notifier{transport: t}
}

// Notify validates and delivers the message.
func (n *Notifier) Notify(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrEmptyRecipient
	}
	return n.transport.Send(ctx, msg)
}

// Transport exposes the composed transport, mainly for logging which channel
// a notification went through.
func (n *Notifier) Transport() Transport { return n.transport }

// UrgentNotifier is a refined abstraction: same transports, different
// shaping. It prefixes the subject and retries transient transport failures.
type UrgentNotifier struct {
	transport Transport
	prefix    string
	retries   int
}

// UrgentOption configures an UrgentNotifier.
type UrgentOption func(*UrgentNotifier)

// WithRetries sets how many times a failed send is retried. Negative values
// are ignored.
func WithRetries(n int) UrgentOption {
	return func(u *UrgentNotifier) {
		if n >= 0 {
			u.retries = n
		}
	}
}

// WithPrefix overrides the default "[URGENT]" subject prefix.
func WithPrefix(p string) UrgentOption {
	return func(u *UrgentNotifier) { u.prefix = p }
}

// NewUrgentNotifier creates an urgent notifier over the given transport.
// Panics on a nil transport.
func NewUrgentNotifier(t Transport, opts ...UrgentOption) *UrgentNotifier {
	if t == nil {
		panic(ErrNilTransport)
	}
	u := &UrgentNotifier{
		transport: t,
		prefix:    "[URGENT]",
		retries:   1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}
	return u
}

// Notify delivers the message with the urgency prefix, retrying failed sends
// up to the configured count. Context cancellation stops the retry loop.
func (u *UrgentNotifier) Notify(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrEmptyRecipient
	}
	msg.Subject = fmt.Sprintf("%s %s", u.prefix, msg.Subject)

	var lastErr error
	for attempt := 0; attempt <= u.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = u.transport.Send(ctx, msg); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("bridge: urgent delivery failed after %d attempts: %w", u.retries+1, lastErr)
}
