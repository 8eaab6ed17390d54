package usecase

import (
	"context"

	"nursehub/internal/domain/entity"
)

// CheckoutInput is a request to open a hosted checkout.
// Identity is nil for guest checkout, in which case GuestEmail is required.
type CheckoutInput struct {
	ProductKey string
	Identity   *entity.Identity
	GuestEmail string
}

// CheckoutUsecase is the checkout initiator.
type CheckoutUsecase interface {
	// CreateCheckout builds the processor session and returns the hosted checkout redirect URL.
	CreateCheckout(ctx context.Context, input *CheckoutInput) (string, error)
}
