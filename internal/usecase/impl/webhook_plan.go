package impl

import (
	"nursehub/internal/domain/entity"
)

type mutationKind string

const (
	mutationGrant          mutationKind = "grant"
	mutationRecordPurchase mutationKind = "record_purchase"
	mutationCancel         mutationKind = "cancel"
)

// webhookMutation is one idempotent store write derived from a verified notification.
type webhookMutation struct {
	kind               mutationKind
	identity           string
	productKey         entity.ProductKey
	customerRef        string
	subscriptionRef    string
	email              string
	checkoutSessionRef string
}

// webhookPlan is the full effect of a notification: an outcome plus the writes that realize it.
type webhookPlan struct {
	outcome   entity.WebhookOutcome
	reason    string
	mutations []webhookMutation
}

// planWebhook maps a verified event to its store mutations. It performs no I/O, so
// redelivering the same event always yields the same plan.
func planWebhook(event *entity.PaymentEvent) webhookPlan {
	switch event.Type {
	case entity.PaymentEventCheckoutCompleted:
		return planCheckoutCompleted(event.Checkout)

	case entity.PaymentEventSubscriptionDeleted:
		if event.Subscription == nil || event.Subscription.ID == "" {
			return webhookPlan{outcome: entity.WebhookDropped, reason: "subscription reference missing"}
		}

		return webhookPlan{
			outcome: entity.WebhookApplied,
			mutations: []webhookMutation{
				{kind: mutationCancel, subscriptionRef: event.Subscription.ID},
			},
		}

	case entity.PaymentEventSubscriptionUpdated:
		// Cancelled entitlements are not reactivated by updates.
		return webhookPlan{outcome: entity.WebhookIgnored, reason: "subscription update is informational"}

	default:
		return webhookPlan{outcome: entity.WebhookIgnored, reason: "unhandled event type " + event.RawType}
	}
}

func planCheckoutCompleted(checkout *entity.CompletedCheckout) webhookPlan {
	if checkout == nil {
		return webhookPlan{outcome: entity.WebhookDropped, reason: "checkout session missing from event"}
	}

	metadata := checkout.Metadata
	if metadata.ProductKey == "" {
		return webhookPlan{outcome: entity.WebhookDropped, reason: "product key missing from metadata"}
	}
	if !metadata.ProductKey.Valid() {
		return webhookPlan{outcome: entity.WebhookDropped, reason: "unrecognized product key " + string(metadata.ProductKey)}
	}

	if metadata.Identity != "" {
		return webhookPlan{
			outcome: entity.WebhookApplied,
			mutations: []webhookMutation{{
				kind:            mutationGrant,
				identity:        metadata.Identity,
				productKey:      metadata.ProductKey,
				customerRef:     checkout.CustomerRef,
				subscriptionRef: checkout.SubscriptionRef,
			}},
		}
	}

	email := metadata.GuestEmail
	if email == "" {
		email = entity.NormalizeEmail(checkout.CustomerEmail)
	}
	if email == "" {
		return webhookPlan{outcome: entity.WebhookDropped, reason: "identity and guest email missing from metadata"}
	}

	return webhookPlan{
		outcome: entity.WebhookApplied,
		mutations: []webhookMutation{{
			kind:               mutationRecordPurchase,
			email:              email,
			productKey:         metadata.ProductKey,
			checkoutSessionRef: checkout.SessionID,
		}},
	}
}
