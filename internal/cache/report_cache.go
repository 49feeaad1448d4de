// Package cache keeps computed ROI reports in redis so repeated dashboard
// loads within the TTL skip the full recompute. Absent or unreachable redis
// degrades to recompute on every request.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"estatecrm/internal/config"
)

type ReportCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// New returns a nil cache when no redis address is configured; a nil
// *ReportCache is safe to call and misses every lookup.
func New(cfg config.RedisConfig) *ReportCache {
	if cfg.Addr == "" {
		return nil
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportCache{
		Client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		TTL: ttl,
	}
}

func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	b, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *ReportCache) Set(ctx context.Context, key string, value []byte) {
	if c == nil || c.Client == nil {
		return
	}
	_ = c.Client.Set(ctx, key, value, c.TTL).Err()
}

// Invalidate drops every cached report. Called after any lead, deal or
// campaign write since all of them can shift attribution.
func (c *ReportCache) Invalidate(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	iter := c.Client.Scan(ctx, 0, "roi:*", 200).Iterator()
	for iter.Next(ctx) {
		_ = c.Client.Del(ctx, iter.Val()).Err()
	}
}

func (c *ReportCache) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// ReportKey derives a cache key from the resolved window and the channel
// list, so a config change never serves stale rows.
func ReportKey(windowStart, windowEnd time.Time, channels []string) string {
	sum := sha256.Sum256([]byte(strings.Join(channels, "\x00")))
	return "roi:" + windowStart.Format("2006-01-02") + ":" + windowEnd.Format("2006-01-02") + ":" + hex.EncodeToString(sum[:8])
}
