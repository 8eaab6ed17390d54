package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nursehub/internal/delivery/context"
	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/repository"
	"nursehub/internal/domain/service"
	"nursehub/internal/usecase"
	"nursehub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const webhookOutcomeRejected = "rejected"

type webhookService struct {
	processor     service.PaymentProcessor
	entitlementUC usecase.EntitlementUsecase
	purchaseRepo  repository.PurchaseRepository
	eventRepo     repository.WebhookEventRepository
	metrics       service.MetricsRecorder
	logger        *slog.Logger
	now           func() time.Time
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	Processor     service.PaymentProcessor
	EntitlementUC usecase.EntitlementUsecase
	PurchaseRepo  repository.PurchaseRepository
	EventRepo     repository.WebhookEventRepository
	Metrics       service.MetricsRecorder
	Logger        *slog.Logger
}

// NewWebhookService creates a new webhook service instance
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	return &webhookService{
		processor:     params.Processor,
		entitlementUC: params.EntitlementUC,
		purchaseRepo:  params.PurchaseRepo,
		eventRepo:     params.EventRepo,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *webhookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleNotification verifies the notification, plans its mutations and applies them in order.
func (srv *webhookService) HandleNotification(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := srv.processor.ParseEvent(payload, signatureHeader)
	if err != nil {
		srv.log(ctx).Warn("Rejected webhook notification", slog.Any("error", err))
		srv.metrics.ObserveWebhook("unverified", webhookOutcomeRejected)

		return domainerrors.ErrWebhookSignature
	}

	receivedAt := srv.now()
	logger := srv.log(ctx).With(
		slog.String("event_id", event.ID),
		slog.String("event_type", event.RawType),
	)

	plan := planWebhook(event)
	switch plan.outcome {
	case entity.WebhookDropped:
		logger.Warn("Dropping webhook event", slog.String("reason", plan.reason))
	case entity.WebhookIgnored:
		logger.Info("Ignoring webhook event", slog.String("reason", plan.reason))
	}

	for _, mutation := range plan.mutations {
		if err := srv.apply(ctx, mutation); err != nil {
			logger.Error("Failed to apply webhook mutation",
				slog.Any("error", err),
				slog.String("mutation", string(mutation.kind)),
			)
			srv.record(ctx, event, entity.WebhookFailed, err.Error(), receivedAt)
			srv.metrics.ObserveWebhook(event.RawType, string(entity.WebhookFailed))

			return errors.Wrapf(domainerrors.ErrWebhookProcessing.WithDetails(err.Error()), "apply %s", mutation.kind)
		}
	}

	srv.record(ctx, event, plan.outcome, plan.reason, receivedAt)
	srv.metrics.ObserveWebhook(event.RawType, string(plan.outcome))
	logger.Debug("Webhook event handled", slog.String("outcome", string(plan.outcome)))

	return nil
}

func (srv *webhookService) apply(ctx context.Context, mutation webhookMutation) error {
	switch mutation.kind {
	case mutationGrant:
		_, err := srv.entitlementUC.CreateOrUpdate(ctx, &usecase.GrantInput{
			Identity:        mutation.identity,
			ProductKey:      mutation.productKey,
			CustomerRef:     util.NonEmpty(mutation.customerRef),
			SubscriptionRef: util.NonEmpty(mutation.subscriptionRef),
		})

		return err

	case mutationRecordPurchase:
		created, err := srv.purchaseRepo.CreateGuestPurchase(ctx, &entity.Purchase{
			Email:              mutation.email,
			ProductKey:         mutation.productKey,
			CheckoutSessionRef: util.NonEmpty(mutation.checkoutSessionRef),
			Status:             entity.PurchaseUnclaimed,
		})
		if err != nil {
			return errors.Wrap(err, "failed to record guest purchase")
		}

		srv.log(ctx).Info("Guest purchase recorded",
			slog.String("email", util.MaskEmail(mutation.email)),
			slog.String("product_key", mutation.productKey.String()),
			slog.Bool("duplicate", !created),
		)

		return nil

	case mutationCancel:
		return srv.entitlementUC.Cancel(ctx, mutation.subscriptionRef)

	default:
		return errors.Errorf("unknown webhook mutation %q", mutation.kind)
	}
}

// record writes the audit ledger entry; failures are logged and never affect the response.
func (srv *webhookService) record(ctx context.Context, event *entity.PaymentEvent, outcome entity.WebhookOutcome, detail string, receivedAt time.Time) {
	if event.ID == "" {
		return
	}

	processedAt := srv.now()
	err := srv.eventRepo.Record(ctx, &entity.WebhookEvent{
		ID:          event.ID,
		Type:        event.RawType,
		Outcome:     outcome,
		Detail:      detail,
		ReceivedAt:  receivedAt,
		ProcessedAt: &processedAt,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record webhook event",
			slog.Any("error", err),
			slog.String("event_id", event.ID),
		)
	}
}
