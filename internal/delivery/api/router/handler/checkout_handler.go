package handler

import (
	"log/slog"

	"nursehub/internal/delivery/api/response"
	deliverycontext "nursehub/internal/delivery/context"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler starts hosted checkouts
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest is the body of POST /api/checkout.
// The product key is checked by the usecase so unknown keys are reported as such.
type CheckoutRequest struct {
	ProductKey string `json:"productKey" validate:"max=64"`
	GuestEmail string `json:"guestEmail,omitempty" validate:"omitempty,email,max=254"`
}

// CheckoutResponse carries the hosted checkout URL to redirect the browser to
type CheckoutResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// CreateCheckout handles POST /api/checkout for signed-in and guest buyers
func (h *CheckoutHandler) CreateCheckout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CheckoutInput{
		ProductKey: req.ProductKey,
		GuestEmail: req.GuestEmail,
	}
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		input.Identity = identity
	}

	redirectURL, err := h.checkoutUC.CreateCheckout(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, CheckoutResponse{RedirectURL: redirectURL})
}
