package handler

import (
	"nursehub/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	Gatherer prometheus.Gatherer
}

// SystemHandler serves operational endpoints
type SystemHandler struct {
	metrics echo.HandlerFunc
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		metrics: echo.WrapHandler(promhttp.HandlerFor(params.Gatherer, promhttp.HandlerOpts{})),
	}
}

// HealthCheck handles GET /health
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// Metrics handles GET /metrics in the Prometheus exposition format
func (h *SystemHandler) Metrics(c echo.Context) error {
	return h.metrics(c)
}
