package handler

import (
	"log/slog"
	"time"

	"nursehub/internal/delivery/api/response"
	deliverycontext "nursehub/internal/delivery/context"
	"nursehub/internal/domain/entity"
	domainerrors "nursehub/internal/domain/errors"
	"nursehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EntitlementHandlerParams holds dependencies for EntitlementHandler, injected by Fx.
type EntitlementHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// EntitlementHandler answers access questions for the caller
type EntitlementHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler
func NewEntitlementHandler(params EntitlementHandlerParams) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// AccessResponse is the body of GET /api/access
type AccessResponse struct {
	HasAccess bool `json:"hasAccess"`
}

// EntitlementView is one entry of GET /api/entitlements
type EntitlementView struct {
	ProductKey entity.ProductKey        `json:"productKey"`
	Status     entity.EntitlementStatus `json:"status"`
	ExpiresAt  *time.Time               `json:"expiresAt,omitempty"`
}

// EntitlementsResponse is the body of GET /api/entitlements
type EntitlementsResponse struct {
	Entitlements []EntitlementView `json:"entitlements"`
}

// CheckAccess handles GET /api/access. It always answers 200: anonymous callers, unknown
// products and lookup failures all read as no access.
func (h *EntitlementHandler) CheckAccess(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.OK(c, AccessResponse{HasAccess: false})
	}

	ctx := c.Request().Context()
	productKey := entity.ProductKey(c.QueryParam("productKey"))

	hasAccess, err := h.entitlementUC.CheckAccess(ctx, identity.ID, productKey)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Access check failed, denying",
			slog.String("identity", identity.ID),
			slog.String("product_key", string(productKey)),
			slog.Any("error", err),
		)

		return response.OK(c, AccessResponse{HasAccess: false})
	}

	return response.OK(c, AccessResponse{HasAccess: hasAccess})
}

// ListEntitlements handles GET /api/entitlements for the signed-in caller
func (h *EntitlementHandler) ListEntitlements(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}

	entitlements, err := h.entitlementUC.ListActive(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	views := make([]EntitlementView, 0, len(entitlements))
	for _, e := range entitlements {
		views = append(views, EntitlementView{
			ProductKey: e.ProductKey,
			Status:     e.Status,
			ExpiresAt:  e.ExpiresAt,
		})
	}

	return response.OK(c, EntitlementsResponse{Entitlements: views})
}
