package middleware

import (
	"log/slog"
	"net/http"

	"nursehub/internal/delivery/api/response"
	deliverycontext "nursehub/internal/delivery/context"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware maps handler errors onto the JSON error body
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		m.logAppError(c, err, appErr)
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// logAppError keeps the full error chain server-side for configuration, signature and 5xx errors.
func (m *ErrorMiddleware) logAppError(c echo.Context, err error, appErr domainerrors.AppError) {
	attrs := []any{
		slog.String("code", appErr.ErrorCode()),
		slog.String("kind", string(appErr.Kind())),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	}

	switch kind := domainerrors.KindOf(err); {
	case kind == domainerrors.KindConfiguration:
		m.log(c).Error("Configuration error", attrs...)
	case kind == domainerrors.KindSignature:
		m.log(c).Warn("Webhook signature rejected", attrs...)
	case appErr.HTTPCode() >= http.StatusInternalServerError:
		m.log(c).Error("Request failed", attrs...)
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
