package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      New(http.StatusNotFound, "not_found", "Resource not found"),
			expected: "not_found: Resource not found",
		},
		{
			name:     "with internal error",
			err:      ErrUnavailable.WithInternal(errors.New("dial tcp: connection refused")),
			expected: "upstream_unavailable: Upstream service unavailable (dial tcp: connection refused)",
		},
		{
			name:     "empty message",
			err:      New(http.StatusBadRequest, "bad_request", ""),
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorCopiesDoNotMutateSentinels(t *testing.T) {
	custom := ErrValidation.WithMessage("fix it").WithDetails(map[string]any{"fullName": "required"})

	assert.Equal(t, "Validation failed", ErrValidation.Message)
	assert.Nil(t, ErrValidation.Details)
	assert.Equal(t, "fix it", custom.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, custom.HTTPStatus)
}

func TestToHTTPError(t *testing.T) {
	t.Run("app error with details", func(t *testing.T) {
		status, body := ToHTTPError(ErrValidation.WithDetails(map[string]any{"workEmail": "invalid_format"}))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		errBody := body["error"].(map[string]any)
		assert.Equal(t, "validation_error", errBody["code"])
		assert.Equal(t, map[string]any{"workEmail": "invalid_format"}, errBody["details"])
	})

	t.Run("wrapped app error", func(t *testing.T) {
		status, body := ToHTTPError(fmt.Errorf("submit: %w", ErrConflict))
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "conflict", body["error"].(map[string]any)["code"])
	})

	t.Run("plain error", func(t *testing.T) {
		status, body := ToHTTPError(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
	})
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	assert.ErrorIs(t, NewInternal("outer", inner), inner)
	assert.Nil(t, NewBadRequest("x").Unwrap())
	assert.Equal(t, "faq '7' not found", NewNotFound("faq", "7").Message)
}

func TestErrorIsMatchesByCode(t *testing.T) {
	derived := ErrConflict.WithMessage("a submission is already in progress")

	assert.ErrorIs(t, derived, ErrConflict)
	assert.ErrorIs(t, fmt.Errorf("api: %w", derived), ErrConflict)
	assert.NotErrorIs(t, derived, ErrValidation)
}
