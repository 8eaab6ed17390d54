package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveCheckout("quiz", "created")
	m.ObserveCheckout("quiz", "created")
	m.ObserveCheckout("osce", "invalid")
	m.ObserveWebhook("checkout.session.completed", "applied")
	m.ObserveEntitlementChange("granted")
	m.ObserveClaimedPurchases(2)
	m.ObserveClaimedPurchases(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.checkouts.WithLabelValues("quiz", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkouts.WithLabelValues("osce", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhooks.WithLabelValues("checkout.session.completed", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entitlementChanges.WithLabelValues("granted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.claimedPurchases))
}

func TestMetrics_InstancesAreIsolated(t *testing.T) {
	first, second := New(), New()

	first.ObserveEntitlementChange("cancelled")

	assert.Equal(t, 0.0, testutil.ToFloat64(second.entitlementChanges.WithLabelValues("cancelled")))
}

func TestMetrics_HTTPRequestsAreGathered(t *testing.T) {
	m := New()

	m.ObserveHTTPRequest("GET", "/api/access", 200, 15*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "nursehub_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
