// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nursehub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for entitlement persistence.
var (
	// ErrEntitlementNotFound is returned when no entitlement exists for the lookup key.
	ErrEntitlementNotFound = errors.New("entitlement not found")
)

// EntitlementRepository defines the interface for entitlement-related database operations.
type EntitlementRepository interface {
	// Upsert inserts or overwrites the entitlement keyed on (identity, product key).
	// The entity is updated with the stored ID and timestamps.
	Upsert(ctx context.Context, entitlement *entity.Entitlement) error

	// FindByIdentityAndProduct retrieves the entitlement for a pair.
	FindByIdentityAndProduct(ctx context.Context, identity string, productKey entity.ProductKey) (*entity.Entitlement, error)

	// FindByIdentity retrieves every entitlement of an identity.
	FindByIdentity(ctx context.Context, identity string) ([]*entity.Entitlement, error)

	// CancelBySubscriptionRef marks every entitlement carrying the subscription reference as cancelled
	// and returns the rows it changed. An empty result is not an error.
	CancelBySubscriptionRef(ctx context.Context, subscriptionRef string) ([]*entity.Entitlement, error)
}
