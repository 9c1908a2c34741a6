package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/i18n"
	"github.com/u4rad/camp-service/internal/service"
)

type sampleRequest struct {
	Name  string `json:"name" binding:"required,max=5"`
	Count int    `json:"count"`
}

func (r *sampleRequest) Validate() error {
	if r.Count%2 != 0 {
		return model.FieldError("count", "must be even")
	}
	return nil
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields map[string]string
	}{
		{name: "valid", body: `{"name": "camp", "count": 2}`},
		{name: "missing field", body: `{"count": 2}`, wantFields: map[string]string{"name": "this field is required"}},
		{name: "too long", body: `{"name": "camps-r-us"}`, wantFields: map[string]string{"name": "ensure this field has no more than 5 characters"}},
		{name: "wrong type", body: `{"name": "camp", "count": "two"}`, wantFields: map[string]string{"count": "must be an integer"}},
		{name: "custom validation", body: `{"name": "camp", "count": 3}`, wantFields: map[string]string{"count": "must be even"}},
		{name: "empty body", body: ``, wantFields: map[string]string{"non_field_errors": "request body is empty"}},
		{name: "malformed", body: `{"name": `, wantFields: map[string]string{"non_field_errors": "request body is not valid JSON"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/", tt.body)

			req, err := BuildRequest[sampleRequest](c)

			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "camp", req.Name)
				return
			}
			var fields model.ValidationErrors
			require.True(t, errors.As(err, &fields), "got %v", err)
			for k, v := range tt.wantFields {
				assert.Equal(t, v, fields[k])
			}
		})
	}
}

func TestPathIDAndQueryID(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/?company_id=7", "")
	c.Params = gin.Params{{Key: "id", Value: "12"}}

	id, ok := PathID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	companyID, ok := QueryID(c, "company_id")
	assert.True(t, ok)
	assert.Equal(t, int64(7), companyID)

	missing, ok := QueryID(c, "camp_id")
	assert.True(t, ok)
	assert.Zero(t, missing)

	for _, raw := range []string{"0", "-3", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := PathID(c)
		assert.False(t, ok, raw)
	}
}

func TestResponseBuilder_HandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		hasField string
	}{
		{"validation", model.FieldError("end_date", "must not be before start_date"), http.StatusBadRequest, dto.ErrCodeInvalidRequest, "end_date"},
		{"not found", fmt.Errorf("camp 3: %w", service.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound, ""},
		{"conflict", service.ErrConflict, http.StatusConflict, dto.ErrCodeConflict, ""},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrCodeUnauthorized, ""},
		{"blacklisted token", service.ErrTokenBlacklisted, http.StatusUnauthorized, dto.ErrCodeUnauthorized, ""},
		{"circuit open", fmt.Errorf("find: %w", circuitbreaker.ErrCircuitOpen), http.StatusServiceUnavailable, dto.ErrCodeUnavailable, ""},
		{"deadline", fmt.Errorf("list: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, dto.ErrCodeTimeout, ""},
		{"unexpected", errors.New("socket closed"), http.StatusInternalServerError, dto.ErrCodeInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/api/camps", "")

			NewResponseBuilder(c).HandleError(tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			resp := decodeError(t, w)
			assert.Equal(t, tt.code, resp.Error)
			assert.NotContains(t, resp.Message, "socket closed")
			if tt.hasField != "" {
				assert.Contains(t, resp.Errors, tt.hasField)
			}
		})
	}
}

func TestResponseBuilder_Message(t *testing.T) {
	c, w := newTestContext(http.MethodDelete, "/", "")
	c.Request.Header.Set("Accept-Language", "hi-IN,en;q=0.8")

	NewResponseBuilder(c).Message(http.StatusOK, i18n.SuccessKeyDeleted)

	var msg dto.MessageResponse
	decodeData(t, w, &msg)
	assert.Equal(t, "सफलतापूर्वक हटाया गया", msg.Message)
}
