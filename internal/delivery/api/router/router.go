// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nursehub/internal/delivery/api/middleware"
	"nursehub/internal/delivery/api/router/handler"
	"nursehub/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler     *handler.CheckoutHandler
	EntitlementHandler  *handler.EntitlementHandler
	ClaimHandler        *handler.ClaimHandler
	ProfileHandler      *handler.ProfileHandler
	WebhookHandler      *handler.WebhookHandler
	SystemHandler       *handler.SystemHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler     *handler.CheckoutHandler
	entitlementHandler  *handler.EntitlementHandler
	claimHandler        *handler.ClaimHandler
	profileHandler      *handler.ProfileHandler
	webhookHandler      *handler.WebhookHandler
	systemHandler       *handler.SystemHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler:     params.CheckoutHandler,
		entitlementHandler:  params.EntitlementHandler,
		claimHandler:        params.ClaimHandler,
		profileHandler:      params.ProfileHandler,
		webhookHandler:      params.WebhookHandler,
		systemHandler:       params.SystemHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.systemHandler.HealthCheck)
	e.GET("/metrics", r.systemHandler.Metrics)

	api := e.Group("/api")

	// Signature-verified, never session-authenticated
	api.POST("/webhooks/stripe", r.webhookHandler.HandleStripe)

	// Optional session
	api.POST("/checkout", r.checkoutHandler.CreateCheckout,
		r.rateLimitMiddleware.Limit(constants.RateLimitBucketCheckout),
		r.authMiddleware.Identify,
	)
	api.GET("/access", r.entitlementHandler.CheckAccess, r.authMiddleware.Identify)

	// Required session
	api.POST("/purchases/claim", r.claimHandler.ClaimPurchases, r.authMiddleware.Authenticate)
	api.GET("/entitlements", r.entitlementHandler.ListEntitlements, r.authMiddleware.Authenticate)
	api.GET("/profile", r.profileHandler.GetProfile, r.authMiddleware.Authenticate)
}
