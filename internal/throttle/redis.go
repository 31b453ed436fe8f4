package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const failureKeyPrefix = "login:failures:"

// RedisStore keeps failure counts in Redis so multiple instances share one
// failure budget per client. The decay window rides on key expiry.
type RedisStore struct {
	client *redis.Client
	window time.Duration
}

func NewRedisStore(client *redis.Client, window time.Duration) *RedisStore {
	return &RedisStore{client: client, window: window}
}

func (s *RedisStore) Failures(ctx context.Context, key string) (int, error) {
	count, err := s.client.Get(ctx, failureKeyPrefix+key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read failure count: %w", err)
	}
	return count, nil
}

func (s *RedisStore) AddFailure(ctx context.Context, key string) error {
	// Increment and expiry travel in one pipeline so the counter can never
	// be left without a TTL; every failure restarts the decay window.
	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, failureKeyPrefix+key)
	pipe.Expire(ctx, failureKeyPrefix+key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, failureKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset failure count: %w", err)
	}
	return nil
}
