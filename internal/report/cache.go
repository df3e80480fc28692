package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss signals the caller to compute the report.
var ErrCacheMiss = errors.New("report not cached")

// Cache stores computed margin reports keyed by menu item.
type Cache interface {
	Get(ctx context.Context, menuItemID string) (*MarginReport, error)
	Set(ctx context.Context, report *MarginReport) error
	InvalidateItem(ctx context.Context, menuItemID string) error
}

// RedisCache keeps worst-margin reports warm between rule edits. The margin
// search is exponential, so recomputing on every dashboard load adds up.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func cacheKey(menuItemID string) string {
	return "report:margin:" + menuItemID
}

func (c *RedisCache) Get(ctx context.Context, menuItemID string) (*MarginReport, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(menuItemID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var report MarginReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, ErrCacheMiss
	}
	return &report, nil
}

func (c *RedisCache) Set(ctx context.Context, report *MarginReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(report.MenuItemID), raw, c.ttl).Err()
}

func (c *RedisCache) InvalidateItem(ctx context.Context, menuItemID string) error {
	return c.rdb.Del(ctx, cacheKey(menuItemID)).Err()
}
