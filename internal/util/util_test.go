package util

import "testing"

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	if got := NonEmpty("   "); got != nil {
		t.Fatalf("NonEmpty(blank) = %q, want nil", *got)
	}

	got := NonEmpty(" cus_123 ")
	if got == nil || *got != "cus_123" {
		t.Fatalf("NonEmpty(\" cus_123 \") = %v, want cus_123", got)
	}

	if Deref(nil) != "" {
		t.Fatal("Deref(nil) should be empty")
	}
	if Deref(got) != "cus_123" {
		t.Fatalf("Deref = %s, want cus_123", Deref(got))
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		path     string
		expected string
	}{
		{name: "plain", base: "https://nursehub.test", path: "/pricing", expected: "https://nursehub.test/pricing"},
		{name: "trailing slash", base: "https://nursehub.test/", path: "/pricing", expected: "https://nursehub.test/pricing"},
		{name: "missing leading slash", base: "https://nursehub.test", path: "pricing", expected: "https://nursehub.test/pricing"},
		{
			name:     "placeholder kept",
			base:     "https://nursehub.test",
			path:     "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
			expected: "https://nursehub.test/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		},
		{name: "empty path", base: "https://nursehub.test/", path: "", expected: "https://nursehub.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := JoinURL(tt.base, tt.path); got != tt.expected {
				t.Fatalf("JoinURL(%q, %q) = %s, want %s", tt.base, tt.path, got, tt.expected)
			}
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email    string
		expected string
	}{
		{email: "alice@example.com", expected: "a***@example.com"},
		{email: "", expected: ""},
		{email: "not-an-email", expected: "***"},
		{email: "@example.com", expected: "***"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()

			if got := MaskEmail(tt.email); got != tt.expected {
				t.Fatalf("MaskEmail(%q) = %s, want %s", tt.email, got, tt.expected)
			}
		})
	}
}
