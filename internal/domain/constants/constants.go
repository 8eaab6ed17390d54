// Package constants defines shared configuration values.
package constants

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Rate limit buckets.
const (
	RateLimitBucketCheckout = "checkout"
	RateLimitBucketDefault  = "default"
)

// Attribute keys stamped on published entitlement events.
const (
	EventAttrType       = "event_type"
	EventAttrIdentity   = "identity"
	EventAttrProductKey = "product_key"
	EventAttrRequestID  = "request_id"
)
