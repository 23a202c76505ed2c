package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed translation cache. Expiry is delegated to
// Redis via per-key TTLs.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis cache.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "intlai:")
}

// NewRedisCache creates a new Redis cache with the given configuration.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisCacheFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisCacheFromClient creates a RedisCache from an existing Redis client.
func NewRedisCacheFromClient(client *redis.Client, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = "intlai:"
	}

	return &RedisCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(key string) (string, bool) {
	ctx := context.Background()
	val, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// Treat transport errors as cache misses
		return "", false
	}
	return val, true
}

// Set stores a value in Redis with the given TTL. A non-positive TTL
// means the key never expires.
func (c *RedisCache) Set(key, value string, ttl time.Duration) error {
	ctx := context.Background()
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err()
}

// Invalidate removes one entry.
func (c *RedisCache) Invalidate(key string) {
	ctx := context.Background()
	_ = c.client.Del(ctx, c.keyPrefix+key).Err()
}

// Clear removes every entry under the cache's key prefix.
func (c *RedisCache) Clear() error {
	ctx := context.Background()

	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *RedisCache) Ping() error {
	ctx := context.Background()
	return c.client.Ping(ctx).Err()
}

// Verify RedisCache implements TranslationCache
var _ TranslationCache = (*RedisCache)(nil)
