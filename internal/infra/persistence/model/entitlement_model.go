package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntitlementModel mirrors the 'entitlements' table. The composite unique index enforces one
// row per identity and product.
type EntitlementModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Identity        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_entitlements_identity_product,priority:1"`
	ProductKey      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_entitlements_identity_product,priority:2"`
	CustomerRef     *string   `gorm:"type:varchar(255)"`
	SubscriptionRef *string   `gorm:"type:varchar(255);index:idx_entitlements_subscription_ref"`
	ExpiresAt       *time.Time
	Status          string `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntitlementModel) TableName() string {
	return "entitlements"
}

// BeforeCreate assigns the primary key so inserts do not depend on database-side UUID functions.
func (m *EntitlementModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
