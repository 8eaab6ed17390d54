package impl

import (
	"context"
	"testing"
	"time"

	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/service"
	mockRepo "nursehub/internal/mocks/repository"
	mockService "nursehub/internal/mocks/service"
	mockUsecase "nursehub/internal/mocks/usecase"
	"nursehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testPayload   = []byte(`{"id":"evt_1"}`)
	testSignature = "t=1,v1=abc"
)

type webhookServiceFixtures struct {
	service       *webhookService
	processor     *mockService.MockPaymentProcessor
	entitlementUC *mockUsecase.MockEntitlementUsecase
	purchaseRepo  *mockRepo.MockPurchaseRepository
	eventRepo     *mockRepo.MockWebhookEventRepository
	metrics       *mockService.MockMetricsRecorder
}

func createTestWebhookService(t *testing.T) webhookServiceFixtures {
	processor := mockService.NewMockPaymentProcessor(t)
	entitlementUC := mockUsecase.NewMockEntitlementUsecase(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	eventRepo := mockRepo.NewMockWebhookEventRepository(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	svc := NewWebhookService(WebhookServiceParams{
		Processor:     processor,
		EntitlementUC: entitlementUC,
		PurchaseRepo:  purchaseRepo,
		EventRepo:     eventRepo,
		Metrics:       metrics,
		Logger:        newDiscardLogger(),
	}).(*webhookService)
	svc.now = func() time.Time { return testNow }

	return webhookServiceFixtures{
		service:       svc,
		processor:     processor,
		entitlementUC: entitlementUC,
		purchaseRepo:  purchaseRepo,
		eventRepo:     eventRepo,
		metrics:       metrics,
	}
}

func (fx webhookServiceFixtures) expectLedger(ctx context.Context, eventID string, outcome entity.WebhookOutcome) {
	fx.eventRepo.EXPECT().
		Record(ctx, mock.MatchedBy(func(e *entity.WebhookEvent) bool {
			return e.ID == eventID && e.Outcome == outcome && e.ProcessedAt != nil
		})).
		Return(nil)
}

func TestWebhookService_InvalidSignature(t *testing.T) {
	fx := createTestWebhookService(t)

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).
		Return(nil, errors.Wrap(service.ErrInvalidSignature, "no valid signature"))
	fx.metrics.EXPECT().ObserveWebhook("unverified", webhookOutcomeRejected).Return()

	err := fx.service.HandleNotification(context.Background(), testPayload, testSignature)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignature)
	assert.Equal(t, domainerrors.KindSignature, domainerrors.KindOf(err))
	assert.NotContains(t, err.Error(), "no valid signature")
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Empty(t, appErr.Details())
	fx.entitlementUC.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	fx.purchaseRepo.AssertNotCalled(t, "CreateGuestPurchase", mock.Anything, mock.Anything)
	fx.eventRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestWebhookService_SignedInCheckoutGrants(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.PaymentEvent{
		ID:      "evt_1",
		Type:    entity.PaymentEventCheckoutCompleted,
		RawType: "checkout.session.completed",
		Checkout: &entity.CompletedCheckout{
			SessionID:       "cs_1",
			CustomerRef:     "cus_1",
			SubscriptionRef: "sub_1",
			Metadata:        entity.CheckoutMetadata{Identity: "u1", ProductKey: entity.ProductQuiz},
		},
	}

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(event, nil)
	fx.entitlementUC.EXPECT().
		CreateOrUpdate(ctx, mock.MatchedBy(func(in *usecase.GrantInput) bool {
			return in.Identity == "u1" &&
				in.ProductKey == entity.ProductQuiz &&
				*in.CustomerRef == "cus_1" &&
				*in.SubscriptionRef == "sub_1" &&
				in.ExpiresAt == nil
		})).
		Return(&entity.Entitlement{Identity: "u1", ProductKey: entity.ProductQuiz, Status: entity.EntitlementActive}, nil)
	fx.expectLedger(ctx, "evt_1", entity.WebhookApplied)
	fx.metrics.EXPECT().ObserveWebhook("checkout.session.completed", string(entity.WebhookApplied)).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, testPayload, testSignature))
}

func TestWebhookService_OneTimeCheckoutGrantsWithoutSubscription(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.PaymentEvent{
		ID:      "evt_2",
		Type:    entity.PaymentEventCheckoutCompleted,
		RawType: "checkout.session.completed",
		Checkout: &entity.CompletedCheckout{
			SessionID: "cs_2",
			Metadata:  entity.CheckoutMetadata{Identity: "u1", ProductKey: entity.ProductOSCE},
		},
	}

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(event, nil)
	fx.entitlementUC.EXPECT().
		CreateOrUpdate(ctx, mock.MatchedBy(func(in *usecase.GrantInput) bool {
			return in.CustomerRef == nil && in.SubscriptionRef == nil
		})).
		Return(&entity.Entitlement{}, nil)
	fx.expectLedger(ctx, "evt_2", entity.WebhookApplied)
	fx.metrics.EXPECT().ObserveWebhook("checkout.session.completed", string(entity.WebhookApplied)).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, testPayload, testSignature))
}

func TestWebhookService_GuestCheckoutRecordsPurchase(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.PaymentEvent{
		ID:      "evt_3",
		Type:    entity.PaymentEventCheckoutCompleted,
		RawType: "checkout.session.completed",
		Checkout: &entity.CompletedCheckout{
			SessionID: "cs_3",
			Metadata:  entity.CheckoutMetadata{ProductKey: entity.ProductOSCE, GuestEmail: "guest@example.com"},
		},
	}

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(event, nil)
	fx.purchaseRepo.EXPECT().
		CreateGuestPurchase(ctx, mock.MatchedBy(func(p *entity.Purchase) bool {
			return p.Email == "guest@example.com" &&
				p.ProductKey == entity.ProductOSCE &&
				p.Status == entity.PurchaseUnclaimed &&
				*p.CheckoutSessionRef == "cs_3"
		})).
		Return(true, nil)
	fx.expectLedger(ctx, "evt_3", entity.WebhookApplied)
	fx.metrics.EXPECT().ObserveWebhook("checkout.session.completed", string(entity.WebhookApplied)).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, testPayload, testSignature))
	fx.entitlementUC.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
}

func TestWebhookService_RedeliveredGuestCheckoutIsAccepted(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.PaymentEvent{
		ID:      "evt_3",
		Type:    entity.PaymentEventCheckoutCompleted,
		RawType: "checkout.session.completed",
		Checkout: &entity.CompletedCheckout{
			SessionID: "cs_3",
			Metadata:  entity.CheckoutMetadata{ProductKey: entity.ProductOSCE, GuestEmail: "guest@example.com"},
		},
	}

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(event, nil)
	fx.purchaseRepo.EXPECT().CreateGuestPurchase(ctx, mock.Anything).Return(false, nil)
	fx.expectLedger(ctx, "evt_3", entity.WebhookApplied)
	fx.metrics.EXPECT().ObserveWebhook("checkout.session.completed", string(entity.WebhookApplied)).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, testPayload, testSignature))
}

func TestWebhookService_SubscriptionDeletedCancels(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.PaymentEvent{
		ID:           "evt_4",
		Type:         entity.PaymentEventSubscriptionDeleted,
		RawType:      "customer.subscription.deleted",
		Subscription: &entity.SubscriptionChange{ID: "sub_1", Status: "canceled"},
	}

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(event, nil)
	fx.entitlementUC.EXPECT().Cancel(ctx, "sub_1").Return(nil)
	fx.expectLedger(ctx, "evt_4", entity.WebhookApplied)
	fx.metrics.EXPECT().ObserveWebhook("customer.subscription.deleted", string(entity.WebhookApplied)).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, testPayload, testSignature))
}

func TestWebhookService_DroppedAndIgnoredEventsAreAcknowledged(t *testing.T) {
	tests := []struct {
		name    string
		event   *entity.PaymentEvent
		outcome entity.WebhookOutcome
	}{
		{
			name: "missing product key",
			event: &entity.PaymentEvent{
				ID: "evt_5", Type: entity.PaymentEventCheckoutCompleted, RawType: "checkout.session.completed",
				Checkout: &entity.CompletedCheckout{Metadata: entity.CheckoutMetadata{Identity: "u1"}},
			},
			outcome: entity.WebhookDropped,
		},
		{
			name: "subscription updated",
			event: &entity.PaymentEvent{
				ID: "evt_6", Type: entity.PaymentEventSubscriptionUpdated, RawType: "customer.subscription.updated",
				Subscription: &entity.SubscriptionChange{ID: "sub_1", Status: "past_due"},
			},
			outcome: entity.WebhookIgnored,
		},
		{
			name:    "unhandled type",
			event:   &entity.PaymentEvent{ID: "evt_7", Type: entity.PaymentEventOther, RawType: "invoice.paid"},
			outcome: entity.WebhookIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWebhookService(t)
			ctx := context.Background()

			fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(tt.event, nil)
			fx.expectLedger(ctx, tt.event.ID, tt.outcome)
			fx.metrics.EXPECT().ObserveWebhook(tt.event.RawType, string(tt.outcome)).Return()

			require.NoError(t, fx.service.HandleNotification(ctx, testPayload, testSignature))
			fx.entitlementUC.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
			fx.entitlementUC.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
		})
	}
}

func TestWebhookService_MutationFailureIsRetryable(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.PaymentEvent{
		ID:      "evt_8",
		Type:    entity.PaymentEventCheckoutCompleted,
		RawType: "checkout.session.completed",
		Checkout: &entity.CompletedCheckout{
			Metadata: entity.CheckoutMetadata{Identity: "u1", ProductKey: entity.ProductQuiz},
		},
	}

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(event, nil)
	fx.entitlementUC.EXPECT().CreateOrUpdate(ctx, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to upsert entitlement"))
	fx.expectLedger(ctx, "evt_8", entity.WebhookFailed)
	fx.metrics.EXPECT().ObserveWebhook("checkout.session.completed", string(entity.WebhookFailed)).Return()

	err := fx.service.HandleNotification(ctx, testPayload, testSignature)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWebhookProcessing)
	assert.NotErrorIs(t, err, domainerrors.ErrWebhookSignature)
}

func TestWebhookService_LedgerFailureDoesNotFailDelivery(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.PaymentEvent{ID: "evt_9", Type: entity.PaymentEventOther, RawType: "invoice.paid"}

	fx.processor.EXPECT().ParseEvent(testPayload, testSignature).Return(event, nil)
	fx.eventRepo.EXPECT().Record(ctx, mock.Anything).Return(errors.New("db error"))
	fx.metrics.EXPECT().ObserveWebhook("invoice.paid", string(entity.WebhookIgnored)).Return()

	require.NoError(t, fx.service.HandleNotification(ctx, testPayload, testSignature))
}
