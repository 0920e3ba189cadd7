package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a coarse fixed-window request counter keyed by source
// (client IP). The first hit in a window sets the expiry; the window is
// approximate on purpose.
type RedisLimiter struct {
	client *redis.Client
	limit  int // max requests per window
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, source string) (bool, error) {
	key := "ratelimit:" + source
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		r.client.Expire(ctx, key, r.window)
	}
	return count <= int64(r.limit), nil
}
