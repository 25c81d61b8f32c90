package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitCache handles Redis operations for per-client request limiting
type RateLimitCache interface {
	// Hit records one request for the client in the named scope and reports
	// whether the client is still within the limit.
	Hit(ctx context.Context, scope, clientKey string, limit int) (bool, error)
}

type rateLimitCache struct {
	client *redis.Client
	window time.Duration
}

// NewRateLimitCache creates a new rate limit cache with a fixed window
func NewRateLimitCache(client *redis.Client, window time.Duration) RateLimitCache {
	return &rateLimitCache{
		client: client,
		window: window,
	}
}

func (c *rateLimitCache) key(scope, clientKey string) string {
	return fmt.Sprintf("rl:%s:%s", scope, clientKey)
}

func (c *rateLimitCache) Hit(ctx context.Context, scope, clientKey string, limit int) (bool, error) {
	key := c.key(scope, clientKey)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit opens the window
		if err := c.client.Expire(ctx, key, c.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}
