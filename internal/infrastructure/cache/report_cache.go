package cache

import (
	"context"
	"time"

	"github.com/packtrack/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ReportCache caches serialized analytics payloads. Write operations on
// belongings or events invalidate the whole cache; entries also expire on
// their own after the configured TTL.
type ReportCache interface {
	// Get returns the cached payload for key, if present and fresh
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a payload under key
	Set(ctx context.Context, key string, payload []byte)

	// Invalidate drops every cached payload
	Invalidate(ctx context.Context)
}

// NewReportCache builds the report cache from configuration. When Redis is
// enabled but unreachable the in-memory cache takes over, so analytics stay
// available on a laptop without a Redis server.
func NewReportCache(cfg config.RedisConfig, logger *zap.Logger) ReportCache {
	if !cfg.Enabled {
		return NewInMemoryReportCache(cfg.CacheTTL)
	}

	redisCache, err := NewRedisReportCache(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory report cache", zap.Error(err))
		return NewInMemoryReportCache(cfg.CacheTTL)
	}
	return redisCache
}

// clock abstracts time for in-memory expiry tests
type clock func() time.Time
