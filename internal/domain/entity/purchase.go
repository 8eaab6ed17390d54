package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus moves only from unclaimed to claimed.
type PurchaseStatus string

const (
	PurchaseUnclaimed PurchaseStatus = "unclaimed"
	PurchaseClaimed   PurchaseStatus = "claimed"
)

// Purchase is a completed guest payment that may later be bound to an identity.
type Purchase struct {
	ID                 uuid.UUID      `json:"id"`
	Email              string         `json:"email"`
	ProductKey         ProductKey     `json:"product_key"`
	CheckoutSessionRef *string        `json:"checkout_session_ref,omitempty"`
	Status             PurchaseStatus `json:"status"`
	ClaimedBy          *string        `json:"claimed_by,omitempty"`
	ClaimedAt          *time.Time     `json:"claimed_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// NormalizeEmail is the canonical form emails are stored and matched in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
