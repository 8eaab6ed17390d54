package validator

import (
	"testing"

	domainerrors "nursehub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ProductKey string `json:"productKey" validate:"required"`
	GuestEmail string `json:"guestEmail,omitempty" validate:"omitempty,email,max=254"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{ProductKey: "quiz"}))
	assert.NoError(t, v.Validate(&sample{ProductKey: "quiz", GuestEmail: "a@example.com"}))

	err := v.Validate(&sample{GuestEmail: "not-an-email"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "productKey is required; guestEmail must be a valid email address", appErr.Details())
}
