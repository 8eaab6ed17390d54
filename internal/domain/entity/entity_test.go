package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseProductKey(t *testing.T) {
	tests := []struct {
		raw    string
		want   ProductKey
		wantOK bool
	}{
		{raw: "osce", want: ProductOSCE, wantOK: true},
		{raw: " Quiz ", want: ProductQuiz, wantOK: true},
		{raw: "HUB", want: ProductHub, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "premium", want: "premium", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseProductKey(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductKeys_AllValid(t *testing.T) {
	for _, key := range ProductKeys() {
		assert.True(t, key.Valid(), key)
	}
}

func TestEntitlement_GrantsAccessAt(t *testing.T) {
	now := time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name        string
		entitlement *Entitlement
		want        bool
	}{
		{name: "nil", entitlement: nil, want: false},
		{name: "active lifetime", entitlement: &Entitlement{Status: EntitlementActive}, want: true},
		{name: "active future", entitlement: &Entitlement{Status: EntitlementActive, ExpiresAt: &future}, want: true},
		{name: "active past", entitlement: &Entitlement{Status: EntitlementActive, ExpiresAt: &past}, want: false},
		{name: "cancelled lifetime", entitlement: &Entitlement{Status: EntitlementCancelled}, want: false},
		{name: "cancelled future", entitlement: &Entitlement{Status: EntitlementCancelled, ExpiresAt: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entitlement.GrantsAccessAt(now))
		})
	}
}

func TestCheckoutMetadata_EncodeDecode(t *testing.T) {
	encoded := CheckoutMetadata{Identity: "u1", ProductKey: ProductQuiz}.Encode()

	assert.Equal(t, "u1", encoded[MetadataIdentity])
	assert.Equal(t, "quiz", encoded[MetadataProductKey])

	decoded := DecodeCheckoutMetadata(map[string]string{
		MetadataIdentity:   " u2 ",
		MetadataProductKey: " OSCE",
		MetadataGuestEmail: "Guest@Example.COM ",
	})

	assert.Equal(t, CheckoutMetadata{Identity: "u2", ProductKey: ProductOSCE, GuestEmail: "guest@example.com"}, decoded)
	assert.Equal(t, CheckoutMetadata{}, DecodeCheckoutMetadata(nil))
}

func TestProfileFromIdentity(t *testing.T) {
	profile := ProfileFromIdentity(&Identity{ID: "u1", Email: "A@B.com", FirstName: "Ada", LastName: "Byron"})
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, "Ada Byron", profile.FullName)

	profile = ProfileFromIdentity(&Identity{ID: "u1", FullName: "Countess Lovelace", FirstName: "Ada"})
	assert.Equal(t, "Countess Lovelace", profile.FullName)

	profile = ProfileFromIdentity(&Identity{ID: "u1", LastName: "Byron"})
	assert.Equal(t, "Byron", profile.FullName)
}
