package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCacheFromClient(client), mr
}

func TestRedisCacheSetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var got map[string]int
	require.NoError(t, cache.Get(ctx, "k", &got))
	assert.Equal(t, 1, got["a"])

	err := cache.Get(ctx, "missing", &got)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestGetOrSetCallsFunctionOnce(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	calls := 0
	render := func() (string, error) {
		calls++
		return "<html>home</html>", nil
	}

	first, err := GetOrSet(cache, ctx, PageKey("/"), time.Minute, render)
	require.NoError(t, err)
	second, err := GetOrSet(cache, ctx, PageKey("/"), time.Minute, render)
	require.NoError(t, err)

	assert.Equal(t, "<html>home</html>", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	mr.FastForward(2 * time.Minute)
	_, err = GetOrSet(cache, ctx, PageKey("/"), time.Minute, render)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrSetDoesNotCacheErrors(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	boom := errors.New("render failed")

	_, err := GetOrSet(cache, ctx, "page:/x", time.Minute, func() (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)

	assert.False(t, mr.Exists("page:/x"))
}

func TestDeletePrefix(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	for _, uri := range []string{"/", "/projects", "/summary"} {
		require.NoError(t, cache.Set(ctx, PageKey(uri), "html", time.Minute))
	}
	require.NoError(t, cache.Set(ctx, "other", 1, time.Minute))

	removed, err := cache.DeletePrefix(ctx, PageKeyPrefix)
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	assert.True(t, mr.Exists("other"))
	assert.False(t, mr.Exists(PageKey("/projects")))
}

func TestNewRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)

	cache, err := NewRedisCache("redis://"+mr.Addr(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), PageKey("/"), "html", time.Minute))
	assert.True(t, mr.Exists(PageKey("/")))
	assert.NoError(t, cache.Close())

	_, err = NewRedisCache("://bad", zap.NewNop())
	assert.Error(t, err)
}
