package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeNotFound, "Coupon not found").WithRequestID("req-1")

	assert.False(t, err.Success)
	assert.Equal(t, ErrCodeNotFound, err.Error)
	assert.Equal(t, "Coupon not found", err.Message)
	assert.Equal(t, "req-1", err.RequestID)
	assert.False(t, err.Timestamp.IsZero())
}

func TestErrorResponse_WithErrors(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "invalid").WithErrors(map[string]string{"case_per_day": "must be greater than 0"})

	raw, mErr := json.Marshal(err)
	require.NoError(t, mErr)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, map[string]interface{}{"case_per_day": "must be greater than 0"}, body["errors"])

	empty := NewError(ErrCodeInternal, "x").WithErrors(nil)
	assert.Nil(t, empty.Errors)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}
