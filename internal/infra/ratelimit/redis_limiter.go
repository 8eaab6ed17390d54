package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a sliding-window limiter over Redis sorted sets, shared by every instance.
type RedisLimiter struct {
	rdb    redis.UniversalClient
	limits limits
	now    func() time.Time
}

// NewRedisLimiter constructs a Redis-backed limiter with the provided per-bucket limits.
func NewRedisLimiter(rdb redis.UniversalClient, bucketLimits map[string]Limit) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limits: limits(bucketLimits),
		now:    time.Now,
	}
}

// Allow adds the request to the window, trims expired entries and counts the rest in one
// MULTI/EXEC. A request over budget is removed again so it does not extend the window.
func (l *RedisLimiter) Allow(ctx context.Context, bucket, key string) (bool, error) {
	if bucket == "" || key == "" {
		return false, errors.New("bucket and key required")
	}

	lim := l.limits.get(bucket)
	nowMs := l.now().UnixMilli()
	windowStart := nowMs - lim.Window.Milliseconds()
	k := limitKey(bucket, key)
	member := strconv.FormatInt(nowMs, 10) + "-" + uuid.NewString()

	pipe := l.rdb.TxPipeline()
	pipe.ZAdd(ctx, k, redis.Z{Score: float64(nowMs), Member: member})
	pipe.ZRemRangeByScore(ctx, k, "-inf", strconv.FormatInt(windowStart, 10))
	countCmd := pipe.ZCard(ctx, k)
	pipe.PExpire(ctx, k, lim.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, errors.Wrap(err, "failed to update rate limit window")
	}

	if countCmd.Val() > int64(lim.Limit) {
		if err := l.rdb.ZRem(ctx, k, member).Err(); err != nil {
			return false, errors.Wrap(err, "failed to discard denied request")
		}

		return false, nil
	}

	return true, nil
}
