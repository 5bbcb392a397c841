package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"klevant/internal/shared/logger"
)

// RedisRateLimiter implements a sliding window over a redis sorted set per
// key. Used on the public ticket submission endpoint.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
	logger logger.Interface
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration, logger logger.Interface) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
		logger: logger,
	}
}

// Allow fails open: a redis outage must not take the public endpoint down
// with it.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rl.prefix + key
	now := time.Now()
	windowStart := now.Add(-rl.window)

	pipe := rl.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, redisKey, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
		return true, nil
	}

	if countCmd.Val() >= int64(rl.limit) {
		return false, nil
	}
	return true, nil
}
