package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/infras/otel/mocks"
	"stay/shared/cache"
)

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)

	client := goRedis.NewClient(&goRedis.Options{
		Addr: server.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGetString(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "greeting", "hello", 60))

	var value string
	require.NoError(t, redisCache.Get(ctx, "greeting", &value))
	assert.Equal(t, "hello", value)
}

func TestRedisCache_SaveAndGetStruct(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Count int `json:"count"`
	}

	require.NoError(t, redisCache.Save(ctx, "counter", payload{Count: 3}, 60))

	var value payload
	require.NoError(t, redisCache.Get(ctx, "counter", &value))
	assert.Equal(t, 3, value.Count)
}

func TestRedisCache_GetMissingKey(t *testing.T) {
	redisCache, _ := newTestCache(t)

	var value int
	err := redisCache.Get(context.Background(), "absent", &value)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_SaveHonorsTTL(t *testing.T) {
	redisCache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "short-lived", 1, 5))

	server.FastForward(6 * time.Second)

	var value int
	err := redisCache.Get(ctx, "short-lived", &value)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Delete(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "doomed", "bye", 60))
	require.NoError(t, redisCache.Delete(ctx, "doomed"))

	var value string
	assert.True(t, errors.Is(redisCache.Get(ctx, "doomed", &value), cache.Nil))
}
