package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/mocks"
	"github.com/u4rad/camp-service/internal/service"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		setupMocks       func(*mocks.MockAuthService)
		expectedStatus   int
		expectedAudit    bool
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful login",
			body: `{"username": "coordinator", "password": "s3cret!"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "coordinator", "s3cret!").Return(
					&dto.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 900},
					&model.User{ID: 1, Username: "coordinator", CompanyName: "U4RAD"},
					nil,
				)
			},
			expectedStatus: http.StatusOK,
			expectedAudit:  true,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.LoginResponse
				decodeData(t, w, &resp)
				assert.Equal(t, "access-token", resp.Token)
				assert.Equal(t, "refresh-token", resp.RefreshToken)
				assert.Equal(t, int64(900), resp.ExpiresIn)
				assert.Equal(t, "coordinator", resp.User.Username)
			},
		},
		{
			name: "invalid credentials",
			body: `{"username": "coordinator", "password": "wrong"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "coordinator", "wrong").Return(nil, nil, service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedAudit:  true,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
				assert.Equal(t, "Invalid username or password", resp.Message)
			},
		},
		{
			name:           "missing password",
			body:           `{"username": "coordinator"}`,
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, w).Errors, "password")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mocks.MockAuthService{}
			tt.setupMocks(auth)
			sink := &recordingSink{}
			router := NewRouter(RouterConfig{Services: Services{Auth: auth}, LogSink: sink})

			w := doJSON(router, http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedAudit, sink.has("login"))
			tt.validateResponse(t, w)
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	auth := &mocks.MockAuthService{}
	auth.On("RefreshToken", mock.Anything, "good").
		Return(&dto.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)
	auth.On("RefreshToken", mock.Anything, "stale").Return(nil, service.ErrInvalidToken)
	router := newTestRouter(Services{Auth: auth})

	w := doRequest(router, http.MethodPost, "/api/auth/refresh", nil, map[string]string{RefreshTokenHeader: "good"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	decodeData(t, w, &resp)
	assert.Equal(t, "new-access", resp.Token)

	w = doRequest(router, http.MethodPost, "/api/auth/refresh", nil, map[string]string{RefreshTokenHeader: "stale"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/refresh", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Errors, RefreshTokenHeader)
}

func TestAuthHandler_Logout(t *testing.T) {
	auth := &mocks.MockAuthService{}
	auth.On("Logout", mock.Anything, "access", "refresh").Return(nil)
	sink := &recordingSink{}
	router := NewRouter(RouterConfig{Services: Services{Auth: auth}, LogSink: sink})

	w := doRequest(router, http.MethodPost, "/api/auth/logout", nil, map[string]string{
		"Authorization":    "Bearer access",
		RefreshTokenHeader: "refresh",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var msg dto.MessageResponse
	decodeData(t, w, &msg)
	assert.Equal(t, "Logged out successfully", msg.Message)
	assert.True(t, sink.has("logout"))

	w = doRequest(router, http.MethodPost, "/api/auth/logout", nil, map[string]string{RefreshTokenHeader: "refresh"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/logout", nil, map[string]string{"Authorization": "Bearer access"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
