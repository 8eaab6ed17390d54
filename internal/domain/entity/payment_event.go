package entity

// PaymentEventType is the processor-neutral classification of a verified notification.
type PaymentEventType string

const (
	PaymentEventCheckoutCompleted   PaymentEventType = "checkout_completed"
	PaymentEventSubscriptionUpdated PaymentEventType = "subscription_updated"
	PaymentEventSubscriptionDeleted PaymentEventType = "subscription_deleted"
	PaymentEventOther               PaymentEventType = "other"
)

// PaymentEvent is a notification whose signature has already been verified.
type PaymentEvent struct {
	ID      string
	Type    PaymentEventType
	RawType string

	// Set for PaymentEventCheckoutCompleted.
	Checkout *CompletedCheckout

	// Set for subscription events.
	Subscription *SubscriptionChange
}

// CompletedCheckout carries the fields of a completed checkout session.
type CompletedCheckout struct {
	SessionID       string
	CustomerRef     string
	SubscriptionRef string
	CustomerEmail   string
	Metadata        CheckoutMetadata
}

// SubscriptionChange carries the fields of a subscription lifecycle notification.
type SubscriptionChange struct {
	ID          string
	Status      string
	CustomerRef string
}
