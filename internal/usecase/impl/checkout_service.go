package impl

import (
	"context"
	"log/slog"
	"strings"

	"nursehub/config"
	deliverycontext "nursehub/internal/delivery/context"
	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/service"
	"nursehub/internal/usecase"
	"nursehub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Checkout results reported to metrics.
const (
	checkoutResultCreated            = "created"
	checkoutResultInvalid            = "invalid"
	checkoutResultMisconfigured      = "misconfigured"
	checkoutResultPriceMisconfigured = "price_misconfigured"
	checkoutResultFailed             = "failed"
)

type checkoutService struct {
	processor service.PaymentProcessor
	profileUC usecase.ProfileUsecase
	metrics   service.MetricsRecorder
	config    *config.Config
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Processor service.PaymentProcessor
	ProfileUC usecase.ProfileUsecase
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		processor: params.Processor,
		profileUC: params.ProfileUC,
		metrics:   params.Metrics,
		config:    params.Config,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckout validates the request, checks pricing configuration and opens a hosted checkout.
func (srv *checkoutService) CreateCheckout(ctx context.Context, input *usecase.CheckoutInput) (string, error) {
	productKey, ok := entity.ParseProductKey(input.ProductKey)
	if !ok {
		srv.metrics.ObserveCheckout("unknown", checkoutResultInvalid)

		return "", domainerrors.ErrInvalidProductKey.WithDetails(input.ProductKey)
	}

	metadata := entity.CheckoutMetadata{ProductKey: productKey}
	var customerEmail string

	signedIn := input.Identity != nil && strings.TrimSpace(input.Identity.ID) != ""
	if signedIn {
		metadata.Identity = strings.TrimSpace(input.Identity.ID)
		customerEmail = entity.NormalizeEmail(input.Identity.Email)
	} else {
		metadata.GuestEmail = entity.NormalizeEmail(input.GuestEmail)
		if metadata.GuestEmail == "" {
			srv.metrics.ObserveCheckout(productKey.String(), checkoutResultInvalid)

			return "", domainerrors.ErrGuestEmailRequired
		}
		customerEmail = metadata.GuestEmail
	}
	if customerEmail == "" {
		customerEmail = entity.NormalizeEmail(input.GuestEmail)
	}

	stripeCfg := srv.config.Billing.Stripe
	if strings.TrimSpace(stripeCfg.SecretKey) == "" {
		srv.log(ctx).Error("Payment processor secret key is not configured")
		srv.metrics.ObserveCheckout(productKey.String(), checkoutResultMisconfigured)

		return "", domainerrors.ErrPaymentSecretMissing
	}

	priceRef, ok := stripeCfg.PriceFor(productKey.String())
	if !ok {
		srv.log(ctx).Error("Price reference is not configured for product",
			slog.String("product_key", productKey.String()),
		)
		srv.metrics.ObserveCheckout(productKey.String(), checkoutResultMisconfigured)

		return "", domainerrors.ErrPriceNotConfigured.WithDetails(productKey.String())
	}

	if signedIn {
		if err := srv.profileUC.EnsureProfile(ctx, input.Identity); err != nil {
			srv.log(ctx).Warn("Failed to sync profile before checkout", slog.Any("error", err))
		}
	}

	req := &entity.CheckoutSessionRequest{
		ProductKey:    productKey,
		PriceRef:      priceRef,
		SuccessURL:    util.JoinURL(srv.config.App.BaseURL, stripeCfg.SuccessPath),
		CancelURL:     util.JoinURL(srv.config.App.BaseURL, stripeCfg.CancelPath),
		CustomerEmail: customerEmail,
		Metadata:      metadata,
	}

	session, err := srv.processor.CreateCheckoutSession(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrPriceNotFound) {
			srv.log(ctx).Error("Payment processor rejected the configured price",
				slog.Any("error", err),
				slog.String("product_key", productKey.String()),
			)
			srv.metrics.ObserveCheckout(productKey.String(), checkoutResultPriceMisconfigured)

			return "", domainerrors.ErrPriceMisconfigured.
				WithMessage("The price configured for " + productKey.String() + " was not recognized by the payment processor; please contact support").
				WithDetails(productKey.String())
		}

		srv.log(ctx).Error("Failed to create checkout session",
			slog.Any("error", err),
			slog.String("product_key", productKey.String()),
		)
		srv.metrics.ObserveCheckout(productKey.String(), checkoutResultFailed)

		return "", errors.Wrap(domainerrors.ErrPaymentProvider.WithDetails(err.Error()), "failed to create checkout session")
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("session_id", session.ID),
		slog.String("product_key", productKey.String()),
		slog.Bool("guest", !signedIn),
	)
	srv.metrics.ObserveCheckout(productKey.String(), checkoutResultCreated)

	return session.URL, nil
}
