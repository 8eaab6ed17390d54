package entity

import "time"

// WebhookOutcome records what processing a verified notification did.
type WebhookOutcome string

const (
	WebhookApplied WebhookOutcome = "applied"
	WebhookDropped WebhookOutcome = "dropped"
	WebhookIgnored WebhookOutcome = "ignored"
	WebhookFailed  WebhookOutcome = "failed"
)

// WebhookEvent is an audit ledger entry for a verified notification.
// It is informational; idempotency comes from the entitlement upsert.
type WebhookEvent struct {
	ID          string
	Type        string
	Outcome     WebhookOutcome
	Detail      string
	ReceivedAt  time.Time
	ProcessedAt *time.Time
}
