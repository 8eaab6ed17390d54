// Package context carries request-scoped values between delivery, usecases and infra adapters.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values this package stores.
type ContextKey string

const (
	// KeyRequestID is the echo.Context key of the request ID.
	KeyRequestID ContextKey = "request_id"

	// keyScope is the context.Context key of the requestScope.
	keyScope ContextKey = "request_scope"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// requestScope is what the request ID middleware hands to everything below the HTTP layer.
type requestScope struct {
	requestID string
	logger    *slog.Logger
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID of the echo.Context, falling back to the
// ID already written to the response header. It is empty outside the middleware chain.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// WithRequestScope attaches the request ID and its logger to ctx.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyScope, requestScope{requestID: requestID, logger: logger})
}

func scopeFrom(ctx context.Context) (requestScope, bool) {
	if ctx == nil {
		return requestScope{}, false
	}
	scope, ok := ctx.Value(keyScope).(requestScope)

	return scope, ok
}

// GetRequestIDFromContext returns the request ID attached to ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	scope, _ := scopeFrom(ctx)

	return scope.requestID
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := scopeFrom(ctx); ok && scope.logger != nil {
		return scope.logger
	}

	return fallback
}
