package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache provides caching functionality using Redis. Rendered pages are
// stored under PageKeyPrefix.
type RedisCache struct {
	client *redis.Client
}

const PageKeyPrefix = "page:"

// PageKey is the cache key for a rendered request URI
func PageKey(uri string) string {
	return PageKeyPrefix + uri
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(redisURL string, log *zap.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("Redis connection established", zap.String("addr", opt.Addr))
	return NewRedisCacheFromClient(client), nil
}

// NewRedisCacheFromClient wraps an existing client
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set stores a value in cache with expiration
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get retrieves a value from cache
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// GetOrSet retrieves a value from cache, or calls the callback to fetch and cache it.
// The callback is only called if the key doesn't exist in cache.
func GetOrSet[T any](c *RedisCache, ctx context.Context, key string, expiration time.Duration, fn func() (T, error)) (T, error) {
	var result T

	err := c.Get(ctx, key, &result)
	if err == nil {
		return result, nil
	}

	result, err = fn()
	if err != nil {
		return result, err
	}

	// a failed write only costs a re-render on the next request
	_ = c.Set(ctx, key, result, expiration)

	return result, nil
}

// DeletePrefix removes every key starting with prefix and returns how many were removed
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	var removed int64
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return removed, err
		}
		removed += n
	}
	return removed, iter.Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
