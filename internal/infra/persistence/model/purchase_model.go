package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseModel mirrors the 'purchases' table of guest payments awaiting a claim.
type PurchaseModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255);not null;index:idx_purchases_email_status,priority:1"`
	ProductKey         string    `gorm:"type:varchar(32);not null"`
	CheckoutSessionRef *string   `gorm:"type:varchar(255);uniqueIndex"`
	Status             string    `gorm:"type:varchar(16);not null;index:idx_purchases_email_status,priority:2"`
	ClaimedBy          *string   `gorm:"type:varchar(255)"`
	ClaimedAt          *time.Time
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// BeforeCreate assigns the primary key so inserts do not depend on database-side UUID functions.
func (m *PurchaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
