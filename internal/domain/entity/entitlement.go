package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementStatus is the lifecycle state of an entitlement.
type EntitlementStatus string

const (
	EntitlementActive    EntitlementStatus = "active"
	EntitlementCancelled EntitlementStatus = "cancelled"
)

// Entitlement is a user's standing access to one product.
// At most one exists per (Identity, ProductKey).
type Entitlement struct {
	ID              uuid.UUID         `json:"id"`
	Identity        string            `json:"identity"`
	ProductKey      ProductKey        `json:"product_key"`
	CustomerRef     *string           `json:"customer_ref,omitempty"`     // Billing customer reference.
	SubscriptionRef *string           `json:"subscription_ref,omitempty"` // Billing subscription reference.
	ExpiresAt       *time.Time        `json:"expires_at,omitempty"`       // Nil means lifetime access.
	Status          EntitlementStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// GrantsAccessAt reports whether the entitlement is active and unexpired at the given time.
// An expiry in the past denies access even while the status is still active.
func (e *Entitlement) GrantsAccessAt(now time.Time) bool {
	if e == nil || e.Status != EntitlementActive {
		return false
	}
	if e.ExpiresAt == nil {
		return true
	}

	return e.ExpiresAt.After(now)
}
