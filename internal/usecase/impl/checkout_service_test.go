package impl

import (
	"context"
	"testing"

	"nursehub/config"
	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/domain/service"
	mockService "nursehub/internal/mocks/service"
	mockUsecase "nursehub/internal/mocks/usecase"
	"nursehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	processor *mockService.MockPaymentProcessor
	profileUC *mockUsecase.MockProfileUsecase
	metrics   *mockService.MockMetricsRecorder
	config    *config.Config
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	processor := mockService.NewMockPaymentProcessor(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	cfg := newTestConfig()

	svc := NewCheckoutService(CheckoutServiceParams{
		Processor: processor,
		ProfileUC: profileUC,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:   svc,
		processor: processor,
		profileUC: profileUC,
		metrics:   metrics,
		config:    cfg,
	}
}

func TestCheckoutService_CreateCheckout_SignedIn(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: "u1", Email: "Jane@Example.com"}

	fx.profileUC.EXPECT().EnsureProfile(ctx, identity).Return(nil)
	fx.processor.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(req *entity.CheckoutSessionRequest) bool {
			return req.PriceRef == "price_quiz" &&
				req.ProductKey == entity.ProductQuiz &&
				req.SuccessURL == "https://nursehub.test/checkout/success?session_id={CHECKOUT_SESSION_ID}" &&
				req.CancelURL == "https://nursehub.test/pricing" &&
				req.CustomerEmail == "jane@example.com" &&
				req.Metadata.Identity == "u1" &&
				req.Metadata.GuestEmail == ""
		})).
		Return(&entity.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.test/cs_1"}, nil)
	fx.metrics.EXPECT().ObserveCheckout("quiz", checkoutResultCreated).Return()

	url, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{ProductKey: "Quiz", Identity: identity})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/cs_1", url)
}

func TestCheckoutService_CreateCheckout_Guest(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.processor.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(req *entity.CheckoutSessionRequest) bool {
			return req.PriceRef == "price_osce" &&
				req.CustomerEmail == "guest@example.com" &&
				req.Metadata.Identity == "" &&
				req.Metadata.GuestEmail == "guest@example.com"
		})).
		Return(&entity.CheckoutSession{ID: "cs_2", URL: "https://checkout.stripe.test/cs_2"}, nil)
	fx.metrics.EXPECT().ObserveCheckout("osce", checkoutResultCreated).Return()

	url, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{ProductKey: "osce", GuestEmail: " Guest@Example.com"})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/cs_2", url)
	fx.profileUC.AssertNotCalled(t, "EnsureProfile", mock.Anything, mock.Anything)
}

func TestCheckoutService_CreateCheckout_ProfileSyncFailureIsIgnored(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	identity := &entity.Identity{ID: "u1", Email: "jane@example.com"}

	fx.profileUC.EXPECT().EnsureProfile(ctx, identity).Return(errors.New("db down"))
	fx.processor.EXPECT().CreateCheckoutSession(ctx, mock.Anything).
		Return(&entity.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.test/cs_1"}, nil)
	fx.metrics.EXPECT().ObserveCheckout("hub", checkoutResultCreated).Return()

	_, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{ProductKey: "hub", Identity: identity})

	require.NoError(t, err)
}

func TestCheckoutService_CreateCheckout_InvalidProduct(t *testing.T) {
	for _, productKey := range []string{"", "premium", "osce2"} {
		t.Run(productKey, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			fx.metrics.EXPECT().ObserveCheckout("unknown", checkoutResultInvalid).Return()

			_, err := fx.service.CreateCheckout(context.Background(), &usecase.CheckoutInput{
				ProductKey: productKey,
				GuestEmail: "guest@example.com",
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidProductKey)
			fx.processor.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckoutService_CreateCheckout_GuestWithoutEmail(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.metrics.EXPECT().ObserveCheckout("osce", checkoutResultInvalid).Return()

	_, err := fx.service.CreateCheckout(context.Background(), &usecase.CheckoutInput{ProductKey: "osce", GuestEmail: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGuestEmailRequired)
	assert.Equal(t, "email required for guest checkout", err.Error())
}

func TestCheckoutService_CreateCheckout_SecretMissing(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.config.Billing.Stripe.SecretKey = ""
	fx.metrics.EXPECT().ObserveCheckout("osce", checkoutResultMisconfigured).Return()

	_, err := fx.service.CreateCheckout(context.Background(), &usecase.CheckoutInput{ProductKey: "osce", GuestEmail: "guest@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentSecretMissing)
	assert.Equal(t, domainerrors.KindConfiguration, domainerrors.KindOf(err))
}

func TestCheckoutService_CreateCheckout_PriceNotConfigured(t *testing.T) {
	fx := createTestCheckoutService(t)
	delete(fx.config.Billing.Stripe.Prices, "hub")
	fx.metrics.EXPECT().ObserveCheckout("hub", checkoutResultMisconfigured).Return()

	_, err := fx.service.CreateCheckout(context.Background(), &usecase.CheckoutInput{ProductKey: "hub", GuestEmail: "guest@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrPriceNotConfigured)
	assert.NotErrorIs(t, err, domainerrors.ErrPaymentSecretMissing)
	assert.Contains(t, err.Error(), "hub")
}

func TestCheckoutService_CreateCheckout_PriceRejectedByProcessor(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.processor.EXPECT().CreateCheckoutSession(ctx, mock.Anything).
		Return(nil, errors.Wrap(service.ErrPriceNotFound, "No such price: 'price_quiz'"))
	fx.metrics.EXPECT().ObserveCheckout("quiz", checkoutResultPriceMisconfigured).Return()

	_, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{ProductKey: "quiz", GuestEmail: "guest@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrPriceMisconfigured)
	assert.Equal(t, domainerrors.KindConfiguration, domainerrors.KindOf(err))
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Contains(t, appErr.Message(), "quiz")
}

func TestCheckoutService_CreateCheckout_ProcessorFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.processor.EXPECT().CreateCheckoutSession(ctx, mock.Anything).Return(nil, errors.New("connection refused"))
	fx.metrics.EXPECT().ObserveCheckout("quiz", checkoutResultFailed).Return()

	_, err := fx.service.CreateCheckout(ctx, &usecase.CheckoutInput{ProductKey: "quiz", GuestEmail: "guest@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentProvider)
	assert.Equal(t, domainerrors.KindUpstream, domainerrors.KindOf(err))
}
