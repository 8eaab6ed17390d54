package repository

import (
	"context"

	"nursehub/internal/domain/entity"
)

// WebhookEventRepository persists the audit ledger of verified notifications.
type WebhookEventRepository interface {
	// Record inserts the event or overwrites the outcome of a redelivered one.
	Record(ctx context.Context, event *entity.WebhookEvent) error
}
