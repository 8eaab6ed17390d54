package model

import "time"

// WebhookEventModel mirrors the 'webhook_events' audit table, keyed by the processor's event ID.
type WebhookEventModel struct {
	ID          string `gorm:"type:varchar(255);primaryKey"`
	Type        string `gorm:"type:varchar(100);not null"`
	Outcome     string `gorm:"type:varchar(16);not null"`
	Detail      string `gorm:"type:text"`
	ReceivedAt  time.Time
	ProcessedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
