package handler

import (
	"io"
	"log/slog"

	"nursehub/internal/delivery/api/response"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderStripeSignature carries the processor's payload signature
const HeaderStripeSignature = "Stripe-Signature"

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives payment processor notifications
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// WebhookResponse acknowledges a processed notification
type WebhookResponse struct {
	Received bool `json:"received"`
}

// HandleStripe handles POST /api/webhooks/stripe. The body is read raw because the
// signature covers the exact bytes sent.
func (h *WebhookHandler) HandleStripe(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unable to read request body")
	}

	if err := h.webhookUC.HandleNotification(c.Request().Context(), payload, c.Request().Header.Get(HeaderStripeSignature)); err != nil {
		return err
	}

	return response.OK(c, WebhookResponse{Received: true})
}
