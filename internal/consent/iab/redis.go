package iab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"cmpref/internal/consent/models"
	"cmpref/internal/sentinel"
)

const (
	defaultHashKey = "cmpref:iab"
	defaultChannel = "cmpref:iab:changed"
)

// RedisSource reads IAB strings from a Redis hash and learns about changes
// through a pub/sub channel carrying the changed key.
type RedisSource struct {
	client  redis.UniversalClient
	hashKey string
	channel string
	logger  *slog.Logger
}

// RedisOption configures the RedisSource.
type RedisOption func(*RedisSource)

// WithHashKey overrides the hash holding the IAB strings.
func WithHashKey(key string) RedisOption {
	return func(s *RedisSource) {
		if key != "" {
			s.hashKey = key
		}
	}
}

// WithChannel overrides the change notification channel.
func WithChannel(channel string) RedisOption {
	return func(s *RedisSource) {
		if channel != "" {
			s.channel = channel
		}
	}
}

// WithLogger sets a logger for ignored messages.
func WithLogger(logger *slog.Logger) RedisOption {
	return func(s *RedisSource) {
		s.logger = logger
	}
}

// NewRedisSource constructs a Redis-backed IAB source.
func NewRedisSource(client redis.UniversalClient, opts ...RedisOption) *RedisSource {
	s := &RedisSource{
		client:  client,
		hashKey: defaultHashKey,
		channel: defaultChannel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisSource) Strings(ctx context.Context) (map[models.Key]string, error) {
	raw, err := s.client.HGetAll(ctx, s.hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read iab strings: %w: %w", sentinel.ErrUnavailable, err)
	}
	out := make(map[models.Key]string, len(raw))
	for field, value := range raw {
		key := models.Key(field)
		if !key.IsIAB() || value == "" {
			continue
		}
		out[key] = value
	}
	return out, nil
}

// Set writes an IAB string and announces the change in one transaction.
// An empty value removes the key.
func (s *RedisSource) Set(ctx context.Context, key models.Key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if value == "" {
			pipe.HDel(ctx, s.hashKey, string(key))
		} else {
			pipe.HSet(ctx, s.hashKey, string(key), value)
		}
		pipe.Publish(ctx, s.channel, string(key))
		return nil
	})
	if err != nil {
		return fmt.Errorf("write iab string: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *RedisSource) Watch(ctx context.Context, fn func(models.Key)) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close() //nolint:errcheck // best-effort cleanup

	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("subscribe iab changes: %w: %w", sentinel.ErrUnavailable, err)
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			key := models.Key(msg.Payload)
			if !key.IsIAB() {
				if s.logger != nil {
					s.logger.WarnContext(ctx, "ignoring unknown iab change", "payload", msg.Payload)
				}
				continue
			}
			fn(key)
		}
	}
}

var _ Source = (*RedisSource)(nil)
