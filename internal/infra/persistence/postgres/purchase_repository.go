package postgres

import (
	"context"
	"time"

	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	"nursehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// CreateGuestPurchase inserts the purchase unless one already exists for the checkout session.
// created is false when the insert was absorbed by the checkout_session_ref unique index.
func (repo *purchaseRepository) CreateGuestPurchase(ctx context.Context, purchase *entity.Purchase) (bool, error) {
	purchaseM := fromPurchaseDomain(purchase)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "checkout_session_ref"}},
			DoNothing: true,
		}).
		Create(purchaseM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create guest purchase")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return true, nil
}

// FindUnclaimedByEmail retrieves the unclaimed purchases made with the email, oldest first, from the primary.
func (repo *purchaseRepository) FindUnclaimedByEmail(ctx context.Context, email string) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND status = ?", entity.NormalizeEmail(email), string(entity.PurchaseUnclaimed)).
		Order("created_at ASC").
		Find(&purchaseModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find unclaimed purchases")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// MarkClaimed binds an unclaimed purchase to the identity. It reports false when the
// purchase was no longer unclaimed, which happens when a concurrent claim won.
func (repo *purchaseRepository) MarkClaimed(ctx context.Context, id uuid.UUID, identity string, claimedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ? AND status = ?", id, string(entity.PurchaseUnclaimed)).
		Updates(map[string]any{
			"status":     string(entity.PurchaseClaimed),
			"claimed_by": identity,
			"claimed_at": claimedAt,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark purchase claimed")
	}

	return result.RowsAffected == 1, nil
}

func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	return &entity.Purchase{
		ID:                 data.ID,
		Email:              data.Email,
		ProductKey:         entity.ProductKey(data.ProductKey),
		CheckoutSessionRef: data.CheckoutSessionRef,
		Status:             entity.PurchaseStatus(data.Status),
		ClaimedBy:          data.ClaimedBy,
		ClaimedAt:          data.ClaimedAt,
		CreatedAt:          data.CreatedAt,
	}
}

func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:                 data.ID,
		Email:              entity.NormalizeEmail(data.Email),
		ProductKey:         string(data.ProductKey),
		CheckoutSessionRef: data.CheckoutSessionRef,
		Status:             string(data.Status),
		ClaimedBy:          data.ClaimedBy,
		ClaimedAt:          data.ClaimedAt,
		CreatedAt:          data.CreatedAt,
	}
}
