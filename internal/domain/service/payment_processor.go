package service

import (
	"context"

	"nursehub/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrPriceNotFound is returned when the processor does not recognize the configured price reference.
	ErrPriceNotFound = errors.New("price not found at payment processor")

	// ErrInvalidSignature is returned when a notification fails signature or payload verification.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// PaymentProcessor is the hosted payment processor.
type PaymentProcessor interface {
	// CreateCheckoutSession opens a hosted checkout and returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, req *entity.CheckoutSessionRequest) (*entity.CheckoutSession, error)

	// ParseEvent verifies the signature header against the raw payload and decodes the notification.
	// Verification failures wrap ErrInvalidSignature.
	ParseEvent(payload []byte, signatureHeader string) (*entity.PaymentEvent, error)
}
