package impl

import (
	"io"
	"log/slog"
	"time"

	"nursehub/config"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.BaseURL = "https://nursehub.test"
	cfg.Billing.Stripe = config.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: "whsec_test",
		SuccessPath:   "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelPath:    "/pricing",
		Prices: map[string]string{
			"osce": "price_osce",
			"quiz": "price_quiz",
			"hub":  "price_hub",
		},
	}

	return cfg
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
