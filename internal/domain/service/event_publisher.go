package service

import (
	"context"

	"nursehub/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEntitlementEvent publishes an entitlement change for downstream consumers
	PublishEntitlementEvent(ctx context.Context, event *entity.EntitlementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
