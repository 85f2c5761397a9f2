package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return NewValidationError("latitude must be between -90 and 90")
			},
			expected: "VALIDATION_ERROR: latitude must be between -90 and 90",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				return NewMalformedResponseError("invalid JSON body", fmt.Errorf("unexpected EOF"))
			},
			expected: "MALFORMED_RESPONSE_ERROR: invalid JSON body (caused by: unexpected EOF)",
		},
		{
			name: "UpstreamStatusIncluded",
			setup: func() *AppError {
				return NewUpstreamHTTPError(503, "forecast request failed")
			},
			expected: "UPSTREAM_HTTP_ERROR: forecast request failed (status 503)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.setup().Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewServiceUnavailableError("geocoding unreachable", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("no results").Unwrap())
}

func TestTypeChecks_SeeThroughWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"Validation", NewValidationError("bad"), IsValidationError},
		{"NotFound", NewNotFoundError("none"), IsNotFoundError},
		{"Malformed", NewMalformedResponseError("bad body", nil), IsMalformedResponseError},
		{"Timeout", NewTimeoutError("slow", nil), IsTimeoutError},
		{"UpstreamHTTP", NewUpstreamHTTPError(500, "boom"), IsUpstreamHTTPError},
		{"ServiceUnavailable", NewServiceUnavailableError("down", nil), IsServiceUnavailableError},
		{"Database", NewDatabaseError("db", nil), IsDatabaseError},
		{"Configuration", NewConfigurationError("cfg", nil), IsConfigurationError},
		{"ModelBehavior", NewModelBehaviorError("unknown tool", nil), IsModelBehaviorError},
		{"MaxTurns", NewMaxTurnsExceededError(10), IsMaxTurnsExceededError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("tool call: %w", tt.err)))
		})
	}
}

func TestTypeChecks_NonAppError(t *testing.T) {
	err := fmt.Errorf("plain error")

	assert.False(t, IsValidationError(err))
	assert.False(t, IsNotFoundError(nil))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(err))
}

func TestUpstreamStatus(t *testing.T) {
	status, ok := UpstreamStatus(fmt.Errorf("wrapped: %w", NewUpstreamHTTPError(503, "down")))
	require.True(t, ok)
	assert.Equal(t, 503, status)

	_, ok = UpstreamStatus(NewTimeoutError("slow", nil))
	assert.False(t, ok)
}

func TestNewMaxTurnsExceededError(t *testing.T) {
	err := NewMaxTurnsExceededError(3)

	assert.Equal(t, MaxTurnsExceededError, err.Type)
	assert.Equal(t, "max turns (3) exceeded", err.Message)
}
