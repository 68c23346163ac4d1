package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client the store needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps values under Prefix+key with no expiry.
type RedisStore struct {
	client RedisClient
	prefix string
}

func NewRedisStore(client RedisClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedLoad, key, err)
	}
	return value, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedSave, key, err)
	}
	return nil
}
