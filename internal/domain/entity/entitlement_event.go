package entity

import "time"

// EntitlementEventType names a published entitlement change.
type EntitlementEventType string

const (
	EventEntitlementGranted   EntitlementEventType = "entitlement.granted"
	EventEntitlementCancelled EntitlementEventType = "entitlement.cancelled"
)

// EntitlementEvent is published after an entitlement is granted or cancelled.
type EntitlementEvent struct {
	RequestID       string               `json:"request_id,omitempty"`
	Type            EntitlementEventType `json:"type"`
	EntitlementID   string               `json:"entitlement_id"`
	Identity        string               `json:"identity"`
	ProductKey      ProductKey           `json:"product_key"`
	SubscriptionRef string               `json:"subscription_ref,omitempty"`
	OccurredAt      time.Time            `json:"occurred_at"`
}
