package pillar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edelwud/pillar-validator/internal/config/modules/source"
	"github.com/edelwud/pillar-validator/internal/domain"
)

// redisGetter is the subset of the Redis client the source uses.
type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSource loads a pillar document stored as a string value in Redis.
type RedisSource struct {
	client  redisGetter
	closer  func() error
	address string
	key     string
	timeout time.Duration
	logger  domain.Logger
}

// NewRedisSource connects to Redis and creates a pillar source.
func NewRedisSource(config source.RedisConfig, logger domain.Logger) (*RedisSource, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:        config.Address,
		Password:    config.Password,
		DB:          config.Database,
		DialTimeout: config.Timeouts.Connect,
		ReadTimeout: config.Timeouts.Read,
		PoolSize:    2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeouts.Connect)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s := newRedisSource(client, config.Address, config.Key, config.Timeouts.Read, logger)
	s.closer = client.Close

	s.logger.Info("Redis pillar source initialized",
		domain.Field{Key: "address", Value: config.Address},
		domain.Field{Key: "database", Value: config.Database},
		domain.Field{Key: "key", Value: config.Key})

	return s, nil
}

// NewRedisSourceWithClient creates a source around an existing client.
func NewRedisSourceWithClient(
	client redisGetter,
	key string,
	timeout time.Duration,
	logger domain.Logger,
) *RedisSource {
	return newRedisSource(client, "", key, timeout, logger)
}

func newRedisSource(
	client redisGetter,
	address, key string,
	timeout time.Duration,
	logger domain.Logger,
) *RedisSource {
	return &RedisSource{
		client:  client,
		address: address,
		key:     key,
		timeout: timeout,
		logger:  logger.With(domain.Field{Key: "component", Value: "pillar.redis"}),
	}
}

// Name identifies the source.
func (s *RedisSource) Name() string {
	return "redis:" + s.key
}

// Load fetches and parses the pillar document.
func (s *RedisSource) Load(ctx context.Context) (domain.Pillar, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis key %q: %w", s.key, ErrPillarNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pillar from Redis: %w", err)
	}

	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("redis key %q: %w", s.key, err)
	}

	s.logger.Debug("Pillar loaded from Redis",
		domain.Field{Key: "key", Value: s.key},
		domain.Field{Key: "bytes", Value: len(raw)})

	return NewMapPillar(doc), nil
}

// Close releases the Redis connection if the source owns it.
func (s *RedisSource) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer()
}
