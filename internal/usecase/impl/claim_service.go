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

type claimService struct {
	purchaseRepo  repository.PurchaseRepository
	entitlementUC usecase.EntitlementUsecase
	profileUC     usecase.ProfileUsecase
	metrics       service.MetricsRecorder
	logger        *slog.Logger
	now           func() time.Time
}

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	PurchaseRepo  repository.PurchaseRepository
	EntitlementUC usecase.EntitlementUsecase
	ProfileUC     usecase.ProfileUsecase
	Metrics       service.MetricsRecorder
	Logger        *slog.Logger
}

// NewClaimService creates a new claim service instance
func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	return &claimService{
		purchaseRepo:  params.PurchaseRepo,
		entitlementUC: params.EntitlementUC,
		profileUC:     params.ProfileUC,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ClaimPurchases grants each unclaimed purchase for the identity's email, then marks it claimed.
// A crash between the two steps is repaired by the next run: the grant is an upsert and the
// purchase is still unclaimed.
func (srv *claimService) ClaimPurchases(ctx context.Context, identity *entity.Identity) ([]usecase.ClaimedPurchase, error) {
	if identity == nil || strings.TrimSpace(identity.ID) == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	email := entity.NormalizeEmail(identity.Email)
	if email == "" {
		return nil, domainerrors.ErrIdentityEmailMissing
	}
	if !identity.EmailVerified {
		return nil, domainerrors.ErrIdentityEmailUnverified
	}

	if err := srv.profileUC.EnsureProfile(ctx, identity); err != nil {
		srv.log(ctx).Warn("Failed to sync profile before claim", slog.Any("error", err))
	}

	purchases, err := srv.purchaseRepo.FindUnclaimedByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to list unclaimed purchases", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstream.WithDetails(err.Error()), "failed to list unclaimed purchases")
	}

	claimed := make([]usecase.ClaimedPurchase, 0, len(purchases))
	for _, purchase := range purchases {
		if !purchase.ProductKey.Valid() {
			srv.log(ctx).Warn("Skipping purchase with unrecognized product",
				slog.String("purchase_id", purchase.ID.String()),
				slog.String("product_key", string(purchase.ProductKey)),
			)

			continue
		}

		if _, err := srv.entitlementUC.CreateOrUpdate(ctx, &usecase.GrantInput{
			Identity:   identity.ID,
			ProductKey: purchase.ProductKey,
		}); err != nil {
			return nil, errors.Wrap(domainerrors.ErrUpstream.WithDetails(err.Error()), "failed to grant claimed purchase")
		}

		marked, err := srv.purchaseRepo.MarkClaimed(ctx, purchase.ID, identity.ID, srv.now())
		if err != nil {
			srv.log(ctx).Error("Failed to mark purchase claimed",
				slog.Any("error", err),
				slog.String("purchase_id", purchase.ID.String()),
			)

			return nil, errors.Wrap(domainerrors.ErrUpstream.WithDetails(err.Error()), "failed to mark purchase claimed")
		}
		if !marked {
			srv.log(ctx).Info("Purchase was claimed concurrently", slog.String("purchase_id", purchase.ID.String()))

			continue
		}

		claimed = append(claimed, usecase.ClaimedPurchase{
			ProductKey: purchase.ProductKey,
			Status:     entity.PurchaseClaimed,
		})
	}

	srv.log(ctx).Info("Claim run finished",
		slog.String("identity", identity.ID),
		slog.String("email", util.MaskEmail(email)),
		slog.Int("claimed", len(claimed)),
	)
	srv.metrics.ObserveClaimedPurchases(len(claimed))

	return claimed, nil
}
