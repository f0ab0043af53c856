package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/packtrack/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "analytics:report:"

// RedisReportCache implements ReportCache using Redis. Suitable when the
// tracker runs alongside a Redis instance; entries carry a TTL so stale
// reports age out even if an invalidation is missed.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache creates a Redis-backed report cache
func NewRedisReportCache(cfg config.RedisConfig) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisReportCache{client: client, ttl: cfg.CacheTTL}, nil
}

// NewRedisReportCacheWithClient creates a cache with an existing Redis client
func NewRedisReportCacheWithClient(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, if present
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if err != nil {
		// Cache misses and transport errors read the same to callers.
		return nil, false
	}
	return payload, true
}

// Set stores a payload under key with the configured TTL
func (c *RedisReportCache) Set(ctx context.Context, key string, payload []byte) {
	c.client.Set(ctx, reportKeyPrefix+key, payload, c.ttl)
}

// Invalidate drops every cached report
func (c *RedisReportCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, reportKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

// Close releases the Redis connection
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
