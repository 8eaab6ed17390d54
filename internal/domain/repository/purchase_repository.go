package repository

import (
	"context"
	"time"

	"nursehub/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository defines the interface for guest purchase persistence.
type PurchaseRepository interface {
	// CreateGuestPurchase inserts an unclaimed purchase. A purchase already recorded for the
	// same checkout session is left untouched and created reports false.
	CreateGuestPurchase(ctx context.Context, purchase *entity.Purchase) (created bool, err error)

	// FindUnclaimedByEmail lists unclaimed purchases for a normalized email.
	FindUnclaimedByEmail(ctx context.Context, email string) ([]*entity.Purchase, error)

	// MarkClaimed transitions an unclaimed purchase to claimed. It reports false when the
	// purchase was no longer unclaimed.
	MarkClaimed(ctx context.Context, id uuid.UUID, identity string, claimedAt time.Time) (bool, error)
}
