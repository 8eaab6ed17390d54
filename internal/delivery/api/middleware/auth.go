package middleware

import (
	"log/slog"
	"strings"

	"nursehub/config"
	deliverycontext "nursehub/internal/delivery/context"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller's identity from the identity-provider session
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	cookie   string
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		cookie:   params.Config.Identity.SessionCookie,
		logger:   params.Logger,
	}
}

// Identify attaches the identity when a valid session is present and otherwise continues anonymously.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.sessionToken(c)
		if token == "" {
			return next(c)
		}

		identity, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Ignoring unusable session on optional route", slog.Any("error", err))

			return next(c)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// Authenticate rejects the request unless a valid session is present.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.sessionToken(c)
		if token == "" {
			return domainerrors.ErrAuthenticationRequired
		}

		identity, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// sessionToken prefers the Authorization bearer token over the session cookie.
func (m *AuthMiddleware) sessionToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if m.cookie == "" {
		return ""
	}
	cookie, err := c.Cookie(m.cookie)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(cookie.Value)
}
