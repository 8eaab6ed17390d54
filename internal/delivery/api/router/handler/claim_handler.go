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

// ClaimHandlerParams holds dependencies for ClaimHandler, injected by Fx.
type ClaimHandlerParams struct {
	fx.In

	ClaimUC usecase.ClaimUsecase
	Logger  *slog.Logger
}

// ClaimHandler binds guest purchases to the signed-in caller
type ClaimHandler struct {
	claimUC usecase.ClaimUsecase
	logger  *slog.Logger
}

// NewClaimHandler is the constructor for ClaimHandler
func NewClaimHandler(params ClaimHandlerParams) *ClaimHandler {
	return &ClaimHandler{
		claimUC: params.ClaimUC,
		logger:  params.Logger,
	}
}

// ClaimResponse lists the purchases bound by this call. It is empty when nothing was left to claim.
type ClaimResponse struct {
	Claimed []usecase.ClaimedPurchase `json:"claimed"`
}

// ClaimPurchases handles POST /api/purchases/claim
func (h *ClaimHandler) ClaimPurchases(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}

	claimed, err := h.claimUC.ClaimPurchases(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	if claimed == nil {
		claimed = []usecase.ClaimedPurchase{}
	}

	return response.OK(c, ClaimResponse{Claimed: claimed})
}
