package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	availabilityKeyPrefix = "disponibilidad:"
	releaseKeyPrefix      = "liberacion:"
	releaseKeyTTL         = 24 * time.Hour
)

// StockCache backs the availability ledger: a display cache of per-tier
// availability plus a set-once marker per reservation token so a release
// is applied at most once.
type StockCache struct {
	client *redis.Client
}

func NewStockCache(addr string) (*StockCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &StockCache{client: client}, nil
}

func (c *StockCache) SetAvailable(ctx context.Context, tierID uint, available int) error {
	return c.client.Set(ctx, availabilityKey(tierID), available, 0).Err()
}

// GetAvailable returns the cached availability for a tier; ok is false on a
// cache miss.
func (c *StockCache) GetAvailable(ctx context.Context, tierID uint) (int, bool, error) {
	n, err := c.client.Get(ctx, availabilityKey(tierID)).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// MarkReleased records that a reservation token has been released. It
// returns false when the token was already marked.
func (c *StockCache) MarkReleased(ctx context.Context, token string) (bool, error) {
	return c.client.SetNX(ctx, releaseKeyPrefix+token, 1, releaseKeyTTL).Result()
}

// UnmarkReleased drops a release marker so the token can be retried.
func (c *StockCache) UnmarkReleased(ctx context.Context, token string) error {
	return c.client.Del(ctx, releaseKeyPrefix+token).Err()
}

func (c *StockCache) Close() error { return c.client.Close() }

func availabilityKey(tierID uint) string {
	return fmt.Sprintf("%s%d", availabilityKeyPrefix, tierID)
}
