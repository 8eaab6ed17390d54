package repository

import (
	"context"

	"nursehub/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrProfileNotFound is returned when no profile exists for an identity.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository persists the local cache of identity-provider profiles.
type ProfileRepository interface {
	// Upsert inserts or refreshes the profile keyed on its identity.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves the profile of an identity.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)
}
