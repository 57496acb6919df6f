// Package cache holds the Redis-backed roster view cache. The joined view is
// rebuilt from the stores on a miss and the whole entry is dropped on any
// write; there is no per-record invalidation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"rollbook/internal/platform/redis"
	"rollbook/internal/roster/filter"
)

const viewKey = "rollbook:roster:view"

// ViewCache caches the serialized roster view in Redis. Cache errors are
// logged and treated as misses; the stores remain the source of truth.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New builds a ViewCache. A nil client yields a nil cache, which the service
// treats as caching disabled.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ViewCache {
	if client == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewCache{client: client, ttl: ttl, logger: logger}
}

func (c *ViewCache) Get(ctx context.Context) ([]filter.Record, bool) {
	payload, err := c.client.Get(ctx, viewKey).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.WarnContext(ctx, "roster view cache read failed", "error", err)
		}
		return nil, false
	}
	var records []filter.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		c.logger.WarnContext(ctx, "roster view cache entry corrupt, dropping", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return records, true
}

func (c *ViewCache) Set(ctx context.Context, records []filter.Record) {
	payload, err := json.Marshal(records)
	if err != nil {
		c.logger.WarnContext(ctx, "roster view cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, viewKey, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "roster view cache write failed", "error", err)
	}
}

func (c *ViewCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, viewKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "roster view cache invalidation failed", "error", err)
	}
}
