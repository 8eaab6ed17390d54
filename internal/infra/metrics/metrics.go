// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"nursehub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nursehub"

// Metrics holds the collectors on a private registry so tests and the /metrics handler
// never share state with the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	checkouts          *prometheus.CounterVec
	webhooks           *prometheus.CounterVec
	entitlementChanges *prometheus.CounterVec
	claimedPurchases   prometheus.Counter
	httpRequests       *prometheus.HistogramVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New registers every collector, plus the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		checkouts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_sessions_total",
				Help:      "Checkout attempts by product and result",
			},
			[]string{"product_key", "result"},
		),
		webhooks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_events_total",
				Help:      "Payment notifications by event type and outcome",
			},
			[]string{"event_type", "outcome"},
		),
		entitlementChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entitlement_changes_total",
				Help:      "Entitlement grants and cancellations",
			},
			[]string{"action"},
		),
		claimedPurchases: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claimed_purchases_total",
				Help:      "Guest purchases bound to an identity",
			},
		),
		httpRequests: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and status",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// Registry is the gatherer served on /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveCheckout(productKey, result string) {
	m.checkouts.WithLabelValues(productKey, result).Inc()
}

func (m *Metrics) ObserveWebhook(eventType, outcome string) {
	m.webhooks.WithLabelValues(eventType, outcome).Inc()
}

func (m *Metrics) ObserveEntitlementChange(action string) {
	m.entitlementChanges.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveClaimedPurchases(count int) {
	if count > 0 {
		m.claimedPurchases.Add(float64(count))
	}
}

// ObserveHTTPRequest records one served request. route is the matched path template, not the raw URL.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
