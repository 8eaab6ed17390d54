package usecase

import "context"

// WebhookUsecase interprets payment processor notifications.
type WebhookUsecase interface {
	// HandleNotification verifies and applies one notification. A signature failure is permanent;
	// any failure after verification is reported as retryable.
	HandleNotification(ctx context.Context, payload []byte, signatureHeader string) error
}
