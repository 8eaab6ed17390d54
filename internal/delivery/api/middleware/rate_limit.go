package middleware

import (
	"log/slog"

	deliverycontext "nursehub/internal/delivery/context"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RateLimitMiddleware enforces per-client request budgets
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
}

// Limit keys the bucket by the caller's IP. A limiter failure lets the request through.
func (m *RateLimitMiddleware) Limit(bucket string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			allowed, err := m.limiter.Allow(ctx, bucket, c.RealIP())
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
					slog.String("bucket", bucket),
					slog.Any("error", err),
				)

				return next(c)
			}
			if !allowed {
				return domainerrors.ErrTooManyRequests
			}

			return next(c)
		}
	}
}
