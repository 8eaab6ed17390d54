package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"billing": map[string]any{
			"stripe": map[string]any{
				"secretKey":     "",
				"webhookSecret": "",
				"prices": map[string]any{
					"osce": "",
				},
			},
		},
		"app": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "BILLING_STRIPE_SECRETKEY", want: "billing.stripe.secretKey"},
		{envKey: "BILLING_STRIPE_WEBHOOKSECRET", want: "billing.stripe.webhookSecret"},
		{envKey: "BILLING_STRIPE_PRICES_OSCE", want: "billing.stripe.prices.osce"},
		{envKey: "APP_BASEURL", want: "app.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
