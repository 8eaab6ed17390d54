package ratelimit

import (
	"context"
	"log/slog"

	"nursehub/config"
	"nursehub/internal/domain/lifecycle"
	"nursehub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the rate limiter, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis limiter when redis.addr is configured and the in-memory limiter otherwise.
func New(params Params) service.RateLimiter {
	bucketLimits := LimitsFromConfig(params.Config.RateLimit)

	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory rate limiter")

		return NewMemoryLimiter(bucketLimits)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Using Redis rate limiter", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisLimiter(rdb, bucketLimits)
}
