package usecase

import (
	"context"

	"nursehub/internal/domain/entity"
)

// ClaimedPurchase is one purchase bound to the caller by a claim run.
type ClaimedPurchase struct {
	ProductKey entity.ProductKey     `json:"productKey"`
	Status     entity.PurchaseStatus `json:"status"`
}

// ClaimUsecase binds unclaimed guest purchases to an authenticated identity.
type ClaimUsecase interface {
	// ClaimPurchases grants every unclaimed purchase made with the identity's email. Safe to repeat.
	ClaimPurchases(ctx context.Context, identity *entity.Identity) ([]ClaimedPurchase, error)
}
