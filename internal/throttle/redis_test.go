package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, window time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, window), mr
}

func TestRedisStore_CountsFailures(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Minute)

	count, err := store.Failures(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, store.AddFailure(ctx, "10.0.0.1"))
	require.NoError(t, store.AddFailure(ctx, "10.0.0.1"))

	count, err = store.Failures(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRedisStore_CounterAlwaysCarriesTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)

	require.NoError(t, store.AddFailure(ctx, "10.0.0.1"))
	assert.Equal(t, time.Minute, mr.TTL(failureKeyPrefix+"10.0.0.1"))

	// Later failures refresh the window rather than leaving the first
	// expiry (or worse, no expiry) in place.
	mr.FastForward(30 * time.Second)
	require.NoError(t, store.AddFailure(ctx, "10.0.0.1"))
	assert.Equal(t, time.Minute, mr.TTL(failureKeyPrefix+"10.0.0.1"))
}

func TestRedisStore_WindowExpiryClearsCount(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)

	require.NoError(t, store.AddFailure(ctx, "10.0.0.1"))
	require.NoError(t, store.AddFailure(ctx, "10.0.0.1"))

	mr.FastForward(2 * time.Minute)

	count, err := store.Failures(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRedisStore_Reset(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Minute)

	require.NoError(t, store.AddFailure(ctx, "10.0.0.1"))
	require.NoError(t, store.Reset(ctx, "10.0.0.1"))

	count, err := store.Failures(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRedisStore_WorksWithLimiter(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Minute)
	limiter := NewLimiter(store, 2)

	require.NoError(t, limiter.Allow(ctx, "10.0.0.1"))
	require.NoError(t, limiter.RecordFailure(ctx, "10.0.0.1"))
	require.NoError(t, limiter.RecordFailure(ctx, "10.0.0.1"))

	assert.ErrorIs(t, limiter.Allow(ctx, "10.0.0.1"), ErrTooManyAttempts)
}
