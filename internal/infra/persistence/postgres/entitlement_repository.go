// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	"nursehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// entitlementRepository implements the repository.EntitlementRepository interface.
type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository is the constructor for entitlementRepository.
func NewEntitlementRepository(db *gorm.DB) repository.EntitlementRepository {
	return &entitlementRepository{
		db: db,
	}
}

// Upsert inserts the entitlement or overwrites the row already held for (identity, product_key).
// The stored row is read back so callers see its ID and creation time.
func (repo *entitlementRepository) Upsert(ctx context.Context, entitlement *entity.Entitlement) error {
	entitlementM := fromEntitlementDomain(entitlement)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "identity"}, {Name: "product_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_ref", "subscription_ref", "expires_at", "status", "updated_at",
			}),
		}).
		Create(entitlementM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert entitlement")
	}

	var stored model.EntitlementModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("identity = ? AND product_key = ?", entitlementM.Identity, entitlementM.ProductKey).
		First(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to read back entitlement")
	}

	*entitlement = *toEntitlementDomain(&stored)

	return nil
}

// FindByIdentityAndProduct retrieves the entitlement row for the pair, whatever its status.
// It reads from the primary: access is checked right after the checkout redirect, before replicas catch up.
func (repo *entitlementRepository) FindByIdentityAndProduct(ctx context.Context, identity string, productKey entity.ProductKey) (*entity.Entitlement, error) {
	var entitlementM model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("identity = ? AND product_key = ?", identity, string(productKey)).
		First(&entitlementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntitlementNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find entitlement")
	}

	return toEntitlementDomain(&entitlementM), nil
}

// FindByIdentity retrieves every entitlement row of an identity, oldest first.
func (repo *entitlementRepository) FindByIdentity(ctx context.Context, identity string) ([]*entity.Entitlement, error) {
	var entitlementModels []*model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("identity = ?", identity).
		Order("created_at ASC").
		Find(&entitlementModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find entitlements by identity")
	}

	entitlements := make([]*entity.Entitlement, 0, len(entitlementModels))
	for _, entitlementM := range entitlementModels {
		entitlements = append(entitlements, toEntitlementDomain(entitlementM))
	}

	return entitlements, nil
}

// CancelBySubscriptionRef flips the active rows carrying the reference to cancelled and returns them.
func (repo *entitlementRepository) CancelBySubscriptionRef(ctx context.Context, subscriptionRef string) ([]*entity.Entitlement, error) {
	var entitlementModels []*model.EntitlementModel
	now := time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("subscription_ref = ? AND status = ?", subscriptionRef, string(entity.EntitlementActive)).
			Find(&entitlementModels).Error; err != nil {
			return err
		}
		if len(entitlementModels) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(entitlementModels))
		for _, entitlementM := range entitlementModels {
			ids = append(ids, entitlementM.ID)
		}

		return tx.Model(&model.EntitlementModel{}).
			Where("id IN ?", ids).
			Updates(map[string]any{
				"status":     string(entity.EntitlementCancelled),
				"updated_at": now,
			}).Error
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to cancel entitlements by subscription")
	}

	cancelled := make([]*entity.Entitlement, 0, len(entitlementModels))
	for _, entitlementM := range entitlementModels {
		entitlementM.Status = string(entity.EntitlementCancelled)
		entitlementM.UpdatedAt = now
		cancelled = append(cancelled, toEntitlementDomain(entitlementM))
	}

	return cancelled, nil
}

func toEntitlementDomain(data *model.EntitlementModel) *entity.Entitlement {
	return &entity.Entitlement{
		ID:              data.ID,
		Identity:        data.Identity,
		ProductKey:      entity.ProductKey(data.ProductKey),
		CustomerRef:     data.CustomerRef,
		SubscriptionRef: data.SubscriptionRef,
		ExpiresAt:       data.ExpiresAt,
		Status:          entity.EntitlementStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromEntitlementDomain(data *entity.Entitlement) *model.EntitlementModel {
	return &model.EntitlementModel{
		ID:              data.ID,
		Identity:        data.Identity,
		ProductKey:      string(data.ProductKey),
		CustomerRef:     data.CustomerRef,
		SubscriptionRef: data.SubscriptionRef,
		ExpiresAt:       data.ExpiresAt,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
