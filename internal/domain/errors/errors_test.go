package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := NewAppError(http.StatusBadRequest, "bad", nil)
	assert.Equal(t, "bad", e.Error())

	wrapped := NewAppError(http.StatusBadRequest, "bad", ErrInvalidInput)
	assert.Equal(t, ErrInvalidInput.Error(), wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrInvalidInput)
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		name     string
		err      *AppError
		code     int
		sentinel error
	}{
		{"not found", NotFound("missing"), http.StatusNotFound, ErrNotFound},
		{"validation", Validation("bad dates"), http.StatusBadRequest, ErrInvalidInput},
		{"authorization", Authorization("nope"), http.StatusForbidden, ErrForbidden},
		{"unauthorized", Unauthorized("login"), http.StatusUnauthorized, ErrUnauthorized},
		{"payment", Payment("declined"), http.StatusPaymentRequired, ErrPaymentFailed},
		{"conflict", Conflict("dup"), http.StatusConflict, ErrAlreadyExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError("email already registered", ErrAlreadyExists)
	appErr, ok := err.(*AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
