package usecase

import (
	"context"
	"time"

	"nursehub/internal/domain/entity"
)

// GrantInput describes an entitlement to create or refresh.
type GrantInput struct {
	Identity        string
	ProductKey      entity.ProductKey
	CustomerRef     *string
	SubscriptionRef *string
	ExpiresAt       *time.Time // nil grants lifetime access
}

// EntitlementUsecase is the entitlement reconciler.
type EntitlementUsecase interface {
	// CreateOrUpdate upserts the entitlement for (identity, product key) as active with the given refs and expiry.
	CreateOrUpdate(ctx context.Context, input *GrantInput) (*entity.Entitlement, error)

	// Cancel marks the entitlements carrying the subscription reference as cancelled.
	// An unknown reference is a logged no-op.
	Cancel(ctx context.Context, subscriptionRef string) error

	// CheckAccess reports whether an active, unexpired entitlement exists for the pair.
	CheckAccess(ctx context.Context, identity string, productKey entity.ProductKey) (bool, error)

	// ListActive returns the entitlements that currently grant access to the identity.
	ListActive(ctx context.Context, identity string) ([]*entity.Entitlement, error)
}
