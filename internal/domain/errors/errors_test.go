package errors

import (
	"net/http"
	"testing"

	"nursehub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrPriceNotConfigured.WithDetails("product quiz")
	wrapped := errors.Wrap(detailed, "create checkout")

	assert.True(t, errors.Is(wrapped, ErrPriceNotConfigured))
	assert.False(t, errors.Is(wrapped, ErrPaymentSecretMissing))
	assert.Equal(t, "product quiz", detailed.Details())
	assert.Equal(t, ErrPriceNotConfigured.Message(), detailed.Message())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: ErrGuestEmailRequired, want: KindValidation},
		{name: "authentication", err: errors.Wrap(ErrAuthenticationRequired, "claim"), want: KindAuthentication},
		{name: "configuration", err: ErrPaymentSecretMissing, want: KindConfiguration},
		{name: "signature", err: ErrWebhookSignature.WithDetails("bad header"), want: KindSignature},
		{name: "database", err: NewDatabaseExecuteError(errors.New("conn reset"), "upsert"), want: KindUpstream},
		{name: "unclassified", err: errors.New("boom"), want: KindUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestDatabaseExecuteError_HidesDriverText(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New(`pq: relation "entitlements" does not exist`), "upsert entitlement")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.NotContains(t, err.Message(), "entitlements")
	assert.Contains(t, err.Error(), "database execution failed")
}
