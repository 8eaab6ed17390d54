// Package ratelimit provides sliding-window request limiters keyed by bucket and caller.
package ratelimit

import (
	"time"

	"nursehub/config"
	"nursehub/internal/domain/constants"
)

// Limit is the request budget of one bucket within a sliding window.
type Limit struct {
	Limit  int
	Window time.Duration
}

var fallbackLimit = Limit{Limit: 100, Window: time.Minute}

// limits resolves a bucket to its configured budget, then the default bucket, then fallbackLimit.
type limits map[string]Limit

func (l limits) get(bucket string) Limit {
	if v, ok := l[bucket]; ok {
		return v
	}
	if v, ok := l[constants.RateLimitBucketDefault]; ok {
		return v
	}

	return fallbackLimit
}

// LimitsFromConfig maps the rateLimit section onto named buckets.
func LimitsFromConfig(cfg *config.RateLimitConfig) map[string]Limit {
	out := map[string]Limit{}
	if cfg == nil {
		return out
	}
	if cfg.Checkout.Limit > 0 && cfg.Checkout.Window > 0 {
		out[constants.RateLimitBucketCheckout] = Limit{Limit: cfg.Checkout.Limit, Window: cfg.Checkout.Window}
	}

	return out
}

func limitKey(bucket, key string) string {
	return "ratelimit:" + bucket + ":" + key
}
