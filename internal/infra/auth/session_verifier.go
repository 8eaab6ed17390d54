// Package auth verifies identity-provider session tokens against the provider's published keys.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nursehub/config"
	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/lifecycle"
	"nursehub/internal/domain/service"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRefreshInterval = 15 * time.Minute

type sessionVerifier struct {
	cache    *jwk.Cache
	jwksURL  string
	issuer   string
	audience string
}

// Params holds dependencies for the session verifier, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSessionVerifier builds a verifier whose JWKS cache refreshes in the background until the app stops.
// A provider that is unreachable at startup is only logged; keys are fetched again on first use.
func NewSessionVerifier(params Params) (service.IdentityVerifier, error) {
	cacheCtx, cancel := context.WithCancel(context.Background())

	verifier, err := newSessionVerifier(cacheCtx, params.Config.Identity)
	if err != nil {
		cancel()

		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancelRefresh := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancelRefresh()

			if _, err := verifier.cache.Refresh(ctx, verifier.jwksURL); err != nil {
				params.Logger.Warn("Failed to prefetch identity provider keys",
					slog.Any("error", err),
					slog.String("jwks_url", verifier.jwksURL),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})

	return verifier, nil
}

func newSessionVerifier(ctx context.Context, cfg config.IdentityConfig) (*sessionVerifier, error) {
	refresh := cfg.RefreshInterval
	if refresh <= 0 {
		refresh = defaultRefreshInterval
	}

	cache := jwk.NewCache(ctx)
	if err := cache.Register(cfg.JWKSURL, jwk.WithMinRefreshInterval(refresh)); err != nil {
		return nil, errors.Wrap(err, "failed to register identity provider JWKS")
	}

	return &sessionVerifier{
		cache:    cache,
		jwksURL:  cfg.JWKSURL,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}, nil
}

// Verify validates signature, expiry, issuer and audience of the session token and maps its claims.
// Token problems are reported as ErrInvalidSession; an unreachable key endpoint as ErrUpstream.
func (v *sessionVerifier) Verify(ctx context.Context, rawToken string) (*entity.Identity, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	keySet, err := v.cache.Get(ctx, v.jwksURL)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUpstream.WithDetails("identity provider keys unavailable"), err.Error())
	}

	options := []jwt.ParseOption{
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithContext(ctx),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		options = append(options, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseString(rawToken, options...)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidSession, err.Error())
	}
	if strings.TrimSpace(token.Subject()) == "" {
		return nil, domainerrors.ErrInvalidSession.WithDetails("token has no subject")
	}

	return &entity.Identity{
		ID:            token.Subject(),
		Email:         stringClaim(token, "email"),
		EmailVerified: emailVerified(token),
		FirstName:     stringClaim(token, "given_name", "first_name"),
		LastName:      stringClaim(token, "family_name", "last_name"),
		FullName:      stringClaim(token, "name"),
		Username:      stringClaim(token, "username", "preferred_username"),
	}, nil
}

// emailVerified reads the email_verified claim. Providers that omit it only issue verified addresses.
// Any value other than true, "true" or an absent claim counts as unverified.
func emailVerified(token jwt.Token) bool {
	raw, ok := token.Get("email_verified")
	if !ok {
		return true
	}

	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

// stringClaim returns the first non-empty string among the named private claims.
func stringClaim(token jwt.Token, names ...string) string {
	for _, name := range names {
		raw, ok := token.Get(name)
		if !ok {
			continue
		}
		if value, ok := raw.(string); ok && value != "" {
			return value
		}
	}

	return ""
}
