package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantKind Kind
		wantCode int
	}{
		{"not found", NotFound("gone"), KindNotFound, http.StatusNotFound},
		{"unauthorized", Unauthorized("wrong actor"), KindUnauthorized, http.StatusForbidden},
		{"invalid state", InvalidState("bad transition"), KindInvalidState, http.StatusBadRequest},
		{"invalid input", InvalidInput("bad field"), KindInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("duplicate"), KindConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := Wrap(cause, KindNotFound, http.StatusNotFound, "user not found")

	assert.Equal(t, "user not found", wrapped.Error(), "The cause must not leak into the message")
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	inner := Conflict("email already in use")
	outer := fmt.Errorf("create user: %w", inner)

	var appErr *AppError
	require.ErrorAs(t, outer, &appErr)
	assert.Equal(t, KindConflict, appErr.Kind)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}
