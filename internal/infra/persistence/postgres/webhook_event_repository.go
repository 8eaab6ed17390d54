package postgres

import (
	"context"

	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	"nursehub/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates the audit ledger of processed notifications.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

// Record stores the outcome of a delivery. A redelivery overwrites the previous outcome of the event.
func (repo *webhookEventRepository) Record(ctx context.Context, event *entity.WebhookEvent) error {
	eventM := &model.WebhookEventModel{
		ID:          event.ID,
		Type:        event.Type,
		Outcome:     string(event.Outcome),
		Detail:      event.Detail,
		ReceivedAt:  event.ReceivedAt,
		ProcessedAt: event.ProcessedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "outcome", "detail", "processed_at"}),
		}).
		Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record webhook event")
	}

	return nil
}
