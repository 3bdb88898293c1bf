package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"
)

// Message is the unit of delivery shared by every transport.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Transport is the implementation side of the bridge: how a message leaves
// the process. Implementations must honor context cancellation.
type Transport interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

var (
	// ErrEmptyRecipient is returned when a message has no recipient.
	ErrEmptyRecipient = errors.New("bridge: empty recipient")

	// ErrNilTransport is returned when constructing a notifier without a transport.
	ErrNilTransport = errors.New("bridge: nil transport")
)

// EmailTransport writes messages in a mail-like format to a sink. In
// production the sink is an SMTP session; in this catalog it is any
// io.Writer, which keeps the transport honest and testable.
type EmailTransport struct {
	from string
	sink io.Writer
}

// NewEmailTransport creates an email transport writing to sink. A nil sink
// discards output.
func NewEmailTransport(from string, sink io.Writer) *EmailTransport {
	if sink == nil {
		sink = io.Discard
	}
	return &EmailTransport{from: from, sink: sink}
}

func (t *EmailTransport) Name() string { return "email" }

func (t *EmailTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.sink, "From: %s\nTo: %s\nSubject: %s\n\n%s\n", t.from, msg.To, msg.Subject, msg.Body)
	return err
}

// The GSM short message size; longer bodies are truncated.
const smsBodyLimit = 160

// SMSTransport delivers the body only, truncated to the SMS size limit.
type SMSTransport struct {
	sink io.Writer
}

// NewSMSTransport creates an SMS transport writing to sink. A nil sink
// discards output.
func NewSMSTransport(sink io.Writer) *SMSTransport {
	if sink == nil {
		sink = io.Discard
	}
	return &SMSTransport{sink: sink}
}

func (t *SMSTransport) Name() string { return "sms" }

func (t *SMSTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.sink, "sms to %s: %s\n", msg.To, truncateBody(msg.Body, smsBodyLimit))
	return err
}

// truncateBody cuts s to at most limit bytes without splitting a rune, so a
// truncated body stays valid UTF-8.
func truncateBody(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// LogTransport delivers messages into the structured log stream. Useful in
// development and as a dead-simple fallback channel.
type LogTransport struct {
	logger *slog.Logger
}

// NewLogTransport creates a transport logging at INFO level. A nil logger
// falls back to slog.Default().
func NewLogTransport(logger *slog.Logger) *LogTransport {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Name() string { return "log" }

func (t *LogTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.logger.InfoContext(ctx, "notification",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
