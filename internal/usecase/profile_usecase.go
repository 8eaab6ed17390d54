// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"nursehub/internal/domain/entity"
)

// ProfileUsecase keeps the local profile cache in step with the identity provider.
type ProfileUsecase interface {
	// EnsureProfile upserts the local profile record from the latest observed identity.
	EnsureProfile(ctx context.Context, identity *entity.Identity) error

	// GetProfile returns the cached profile of an identity.
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)
}
