// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
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

// Entitlement change actions reported to metrics.
const (
	entitlementActionGranted   = "granted"
	entitlementActionCancelled = "cancelled"
)

// entitlementService implements the EntitlementUsecase interface.
// The (identity, product_key) unique index is the only concurrency control.
type entitlementService struct {
	entitlementRepo repository.EntitlementRepository
	publisher       service.EventPublisher
	metrics         service.MetricsRecorder
	logger          *slog.Logger
	now             func() time.Time
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	EntitlementRepo repository.EntitlementRepository
	Publisher       service.EventPublisher
	Metrics         service.MetricsRecorder
	Logger          *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		entitlementRepo: params.EntitlementRepo,
		publisher:       params.Publisher,
		metrics:         params.Metrics,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrUpdate upserts the entitlement for the pair. Repeated calls overwrite; the latest values win.
func (srv *entitlementService) CreateOrUpdate(ctx context.Context, input *usecase.GrantInput) (*entity.Entitlement, error) {
	if input == nil || strings.TrimSpace(input.Identity) == "" {
		return nil, domainerrors.ErrIdentityRequired
	}
	if !input.ProductKey.Valid() {
		return nil, domainerrors.ErrInvalidProductKey.WithDetails(string(input.ProductKey))
	}

	entitlement := &entity.Entitlement{
		Identity:        strings.TrimSpace(input.Identity),
		ProductKey:      input.ProductKey,
		CustomerRef:     util.NonEmpty(util.Deref(input.CustomerRef)),
		SubscriptionRef: util.NonEmpty(util.Deref(input.SubscriptionRef)),
		ExpiresAt:       input.ExpiresAt,
		Status:          entity.EntitlementActive,
	}

	if err := srv.entitlementRepo.Upsert(ctx, entitlement); err != nil {
		srv.log(ctx).Error("Failed to upsert entitlement",
			slog.Any("error", err),
			slog.String("identity", entitlement.Identity),
			slog.String("product_key", entitlement.ProductKey.String()),
		)

		return nil, errors.Wrap(err, "failed to upsert entitlement")
	}

	srv.log(ctx).Info("Entitlement granted",
		slog.String("identity", entitlement.Identity),
		slog.String("product_key", entitlement.ProductKey.String()),
		slog.Bool("lifetime", entitlement.ExpiresAt == nil),
	)
	srv.metrics.ObserveEntitlementChange(entitlementActionGranted)
	srv.publish(ctx, entity.EventEntitlementGranted, entitlement)

	return entitlement, nil
}

// Cancel flips the entitlements carrying the subscription reference to cancelled.
// Notifications may arrive out of order, so an unknown reference is not an error.
func (srv *entitlementService) Cancel(ctx context.Context, subscriptionRef string) error {
	subscriptionRef = strings.TrimSpace(subscriptionRef)
	if subscriptionRef == "" {
		return domainerrors.ErrSubscriptionRefRequired
	}

	cancelled, err := srv.entitlementRepo.CancelBySubscriptionRef(ctx, subscriptionRef)
	if err != nil {
		srv.log(ctx).Error("Failed to cancel entitlement",
			slog.Any("error", err),
			slog.String("subscription_ref", subscriptionRef),
		)

		return errors.Wrap(err, "failed to cancel entitlement")
	}

	if len(cancelled) == 0 {
		srv.log(ctx).Info("No active entitlement carries the subscription, nothing to cancel",
			slog.String("subscription_ref", subscriptionRef),
		)

		return nil
	}

	for _, entitlement := range cancelled {
		srv.log(ctx).Info("Entitlement cancelled",
			slog.String("identity", entitlement.Identity),
			slog.String("product_key", entitlement.ProductKey.String()),
			slog.String("subscription_ref", subscriptionRef),
		)
		srv.metrics.ObserveEntitlementChange(entitlementActionCancelled)
		srv.publish(ctx, entity.EventEntitlementCancelled, entitlement)
	}

	return nil
}

// CheckAccess reports whether an active, unexpired entitlement exists for the pair.
func (srv *entitlementService) CheckAccess(ctx context.Context, identity string, productKey entity.ProductKey) (bool, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" || !productKey.Valid() {
		return false, nil
	}

	entitlement, err := srv.entitlementRepo.FindByIdentityAndProduct(ctx, identity, productKey)
	if err != nil {
		if errors.Is(err, repository.ErrEntitlementNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find entitlement")
	}

	return entitlement.GrantsAccessAt(srv.now()), nil
}

// ListActive returns the entitlements currently granting access to the identity.
func (srv *entitlementService) ListActive(ctx context.Context, identity string) ([]*entity.Entitlement, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	entitlements, err := srv.entitlementRepo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entitlements")
	}

	now := srv.now()
	active := make([]*entity.Entitlement, 0, len(entitlements))
	for _, entitlement := range entitlements {
		if entitlement.GrantsAccessAt(now) {
			active = append(active, entitlement)
		}
	}

	return active, nil
}

// publish is best-effort; a failed publish never undoes a committed entitlement change.
func (srv *entitlementService) publish(ctx context.Context, eventType entity.EntitlementEventType, entitlement *entity.Entitlement) {
	event := &entity.EntitlementEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		Type:            eventType,
		EntitlementID:   entitlement.ID.String(),
		Identity:        entitlement.Identity,
		ProductKey:      entitlement.ProductKey,
		SubscriptionRef: util.Deref(entitlement.SubscriptionRef),
		OccurredAt:      srv.now().UTC(),
	}

	if err := srv.publisher.PublishEntitlementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish entitlement event",
			slog.Any("error", err),
			slog.String("event_type", string(eventType)),
			slog.String("identity", entitlement.Identity),
		)
	}
}
