package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ContentCache is a read-through JSON cache for public list endpoints, backed
// by Redis. Every operation tolerates an unreachable Redis: reads report a
// miss and writes are dropped, so the site keeps serving from Postgres.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New builds a cache around an existing client. A nil client yields a cache
// that always misses.
func New(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ContentCache {
	return &ContentCache{client: client, ttl: ttl, logger: logger}
}

// Get unmarshals the cached value for key into dest, reporting whether it hit.
func (c *ContentCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("cache entry corrupt; dropping", zap.String("key", key), zap.Error(err))
		c.Invalidate(ctx, key)
		return false
	}
	return true
}

// Set stores val under key for the configured TTL.
func (c *ContentCache) Set(ctx context.Context, key string, val any) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(val)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes the given keys. Called after every admin write so public
// readers never see stale content longer than one round trip.
func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", zap.Error(err))
	}
}
