package service

import (
	"context"

	"nursehub/internal/domain/entity"
)

// IdentityVerifier validates identity-provider session tokens.
type IdentityVerifier interface {
	// Verify checks the token's signature, issuer, audience and expiry and returns the identity it asserts.
	Verify(ctx context.Context, rawToken string) (*entity.Identity, error)
}
