package impl

import (
	"testing"

	"nursehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPlanWebhook(t *testing.T) {
	tests := []struct {
		name          string
		event         *entity.PaymentEvent
		wantOutcome   entity.WebhookOutcome
		wantMutations []webhookMutation
	}{
		{
			name: "signed-in checkout grants entitlement",
			event: &entity.PaymentEvent{
				Type: entity.PaymentEventCheckoutCompleted,
				Checkout: &entity.CompletedCheckout{
					SessionID:       "cs_1",
					CustomerRef:     "cus_1",
					SubscriptionRef: "sub_1",
					Metadata:        entity.CheckoutMetadata{Identity: "u1", ProductKey: entity.ProductQuiz},
				},
			},
			wantOutcome: entity.WebhookApplied,
			wantMutations: []webhookMutation{{
				kind: mutationGrant, identity: "u1", productKey: entity.ProductQuiz, customerRef: "cus_1", subscriptionRef: "sub_1",
			}},
		},
		{
			name: "guest checkout records purchase",
			event: &entity.PaymentEvent{
				Type: entity.PaymentEventCheckoutCompleted,
				Checkout: &entity.CompletedCheckout{
					SessionID: "cs_2",
					Metadata:  entity.CheckoutMetadata{ProductKey: entity.ProductOSCE, GuestEmail: "guest@example.com"},
				},
			},
			wantOutcome: entity.WebhookApplied,
			wantMutations: []webhookMutation{{
				kind: mutationRecordPurchase, email: "guest@example.com", productKey: entity.ProductOSCE, checkoutSessionRef: "cs_2",
			}},
		},
		{
			name: "guest checkout falls back to customer email",
			event: &entity.PaymentEvent{
				Type: entity.PaymentEventCheckoutCompleted,
				Checkout: &entity.CompletedCheckout{
					SessionID:     "cs_3",
					CustomerEmail: "Buyer@Example.com",
					Metadata:      entity.CheckoutMetadata{ProductKey: entity.ProductHub},
				},
			},
			wantOutcome: entity.WebhookApplied,
			wantMutations: []webhookMutation{{
				kind: mutationRecordPurchase, email: "buyer@example.com", productKey: entity.ProductHub, checkoutSessionRef: "cs_3",
			}},
		},
		{
			name: "checkout without product is dropped",
			event: &entity.PaymentEvent{
				Type:     entity.PaymentEventCheckoutCompleted,
				Checkout: &entity.CompletedCheckout{Metadata: entity.CheckoutMetadata{Identity: "u1"}},
			},
			wantOutcome: entity.WebhookDropped,
		},
		{
			name: "checkout with unknown product is dropped",
			event: &entity.PaymentEvent{
				Type:     entity.PaymentEventCheckoutCompleted,
				Checkout: &entity.CompletedCheckout{Metadata: entity.CheckoutMetadata{Identity: "u1", ProductKey: "premium"}},
			},
			wantOutcome: entity.WebhookDropped,
		},
		{
			name: "checkout without identity or email is dropped",
			event: &entity.PaymentEvent{
				Type:     entity.PaymentEventCheckoutCompleted,
				Checkout: &entity.CompletedCheckout{Metadata: entity.CheckoutMetadata{ProductKey: entity.ProductQuiz}},
			},
			wantOutcome: entity.WebhookDropped,
		},
		{
			name:        "checkout event without session is dropped",
			event:       &entity.PaymentEvent{Type: entity.PaymentEventCheckoutCompleted},
			wantOutcome: entity.WebhookDropped,
		},
		{
			name: "subscription deleted cancels",
			event: &entity.PaymentEvent{
				Type:         entity.PaymentEventSubscriptionDeleted,
				Subscription: &entity.SubscriptionChange{ID: "sub_1"},
			},
			wantOutcome:   entity.WebhookApplied,
			wantMutations: []webhookMutation{{kind: mutationCancel, subscriptionRef: "sub_1"}},
		},
		{
			name: "subscription deleted without id is dropped",
			event: &entity.PaymentEvent{
				Type:         entity.PaymentEventSubscriptionDeleted,
				Subscription: &entity.SubscriptionChange{},
			},
			wantOutcome: entity.WebhookDropped,
		},
		{
			name: "subscription updated is ignored",
			event: &entity.PaymentEvent{
				Type:         entity.PaymentEventSubscriptionUpdated,
				Subscription: &entity.SubscriptionChange{ID: "sub_1", Status: "active"},
			},
			wantOutcome: entity.WebhookIgnored,
		},
		{
			name:        "other events are ignored",
			event:       &entity.PaymentEvent{Type: entity.PaymentEventOther, RawType: "invoice.paid"},
			wantOutcome: entity.WebhookIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planWebhook(tt.event)

			assert.Equal(t, tt.wantOutcome, plan.outcome)
			assert.Equal(t, tt.wantMutations, plan.mutations)
			if tt.wantOutcome != entity.WebhookApplied {
				assert.NotEmpty(t, plan.reason)
			}
		})
	}
}

func TestPlanWebhook_IsDeterministic(t *testing.T) {
	event := &entity.PaymentEvent{
		Type: entity.PaymentEventCheckoutCompleted,
		Checkout: &entity.CompletedCheckout{
			SessionID: "cs_1",
			Metadata:  entity.CheckoutMetadata{Identity: "u1", ProductKey: entity.ProductOSCE},
		},
	}

	assert.Equal(t, planWebhook(event), planWebhook(event))
}
