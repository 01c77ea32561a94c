package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter keeps the sliding window in a sorted set per key so the limit
// holds across multiple API instances.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisLimiter(client *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		window: window,
		max:    max,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	now := time.Now()
	redisKey := "ratelimit:" + key
	cutoff := now.Add(-l.window).UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", cutoff))
	countCmd := pipe.ZCard(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("ratelimit: redis error for %s: %v", key, err)
		return true
	}

	if countCmd.Val() >= int64(l.max) {
		return false
	}

	member := fmt.Sprintf("%d", now.UnixNano())
	pipe = l.client.TxPipeline()
	pipe.ZAdd(ctx, redisKey, &redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("ratelimit: redis error for %s: %v", key, err)
	}

	return true
}
