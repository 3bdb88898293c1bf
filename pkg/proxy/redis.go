package proxy

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the connection behind a RedisStore. Load it with
// the singleton package's Config helper or any env parser.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
}

var (
	// ErrInvalidRedisURL is returned when the connection URL cannot be parsed.
	ErrInvalidRedisURL = errors.New("proxy: failed to parse redis connection URL")

	// ErrRedisNotReady is returned when the server does not answer pings
	// within the configured attempts.
	ErrRedisNotReady = errors.New("proxy: redis did not become ready")
)

// ConnectRedis establishes a verified connection using the config's retry
// policy and returns a ready client.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for range attempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// RedisStore is the remote subject the proxies in this package typically
// guard: a Store reading string values from Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client. Panics on nil.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("proxy: nil redis client")
	}
	return &RedisStore{client: client}
}

// Get reads the value stored under key. Missing keys map to ErrNotFound so
// callers never see the driver's sentinel.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
