package observer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ErrSubjectClosed is returned when publishing to a closed subject.
var ErrSubjectClosed = errors.New("observer: subject is closed")

// RedisSubject carries events between processes over Redis pub/sub. Events
// are serialized as JSON; observers in any process subscribed to the same
// channel receive them through the standard Subscription interface.
type RedisSubject[T any] struct {
	client  *redis.Client
	channel string
	buffer  int
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
	subs   []*redisSubscription[T]
}

// RedisOption configures a RedisSubject.
type RedisOption func(*redisConfig)

type redisConfig struct {
	buffer int
	logger *slog.Logger
}

// WithBuffer sets the per-subscription delivery buffer. Defaults to 16.
func WithBuffer(n int) RedisOption {
	return func(c *redisConfig) {
		if n > 0 {
			c.buffer = n
		}
	}
}

// WithLogger sets the logger for decode failures and subscription teardown.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) RedisOption {
	return func(c *redisConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewRedisSubject creates a subject publishing to the given pub/sub
// channel. Panics on a nil client or empty channel, since both are wiring
// mistakes.
func NewRedisSubject[T any](client *redis.Client, channel string, opts ...RedisOption) *RedisSubject[T] {
	if client == nil {
		panic("observer: nil redis client")
	}
	if channel == "" {
		panic("observer: empty channel name")
	}

	cfg := redisConfig{buffer: 16, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &RedisSubject[T]{
		client:  client,
		channel: channel,
		buffer:  cfg.buffer,
		logger:  cfg.logger,
	}
}

// Publish serializes evt and publishes it to the Redis channel.
func (s *RedisSubject[T]) Publish(ctx context.Context, evt Event[T]) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrSubjectClosed
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("observer: marshal event: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, data).Err(); err != nil {
		return fmt.Errorf("observer: publish to %q: %w", s.channel, err)
	}
	return nil
}

// Subscribe opens a Redis subscription on the subject's channel. Incoming
// payloads that fail to decode are logged and skipped rather than killing
// the subscription.
func (s *RedisSubject[T]) Subscribe(ctx context.Context) Subscription[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &redisSubscription[T]{
		out: make(chan Event[T], s.buffer),
	}
	if s.closed {
		close(sub.out)
		sub.closed = true
		return sub
	}

	ps := s.client.Subscribe(ctx, s.channel)
	sub.ps = ps
	s.subs = append(s.subs, sub)

	go s.pump(ctx, sub)
	return sub
}

// Close closes every open subscription. The Redis client itself belongs to
// the caller and is left open.
func (s *RedisSubject[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	var errs []error
	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *RedisSubject[T]) pump(ctx context.Context, sub *redisSubscription[T]) {
	defer sub.Close()

	in := sub.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			var evt Event[T]
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				s.logger.ErrorContext(ctx, "observer: drop undecodable event",
					slog.String("channel", s.channel),
					slog.Any("error", err),
				)
				continue
			}
			// Non-blocking: an observer that is not keeping up drops
			// events rather than stalling the pump.
			sub.offer(evt)
		}
	}
}

// redisSubscription adapts a go-redis PubSub to the Subscription interface.
type redisSubscription[T any] struct {
	ps  *redis.PubSub
	out chan Event[T]

	mu     sync.Mutex
	closed bool
}

func (s *redisSubscription[T]) Events(context.Context) <-chan Event[T] {
	return s.out
}

func (s *redisSubscription[T]) offer(evt Event[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.out <- evt:
		return true
	default:
		return false
	}
}

func (s *redisSubscription[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	var err error
	if s.ps != nil {
		err = s.ps.Close()
	}
	close(s.out)
	return err
}
