//go:build integration

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
)

func setupAuthIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := setupIntegrationDB(t)

	userRepo := repository.NewUserRepository(db, nil)
	users := service.NewUserService(userRepo)
	auth := service.NewAuthService(userRepo, repository.NewTokenRepository(db, nil), config.AuthConfig{
		Enabled:          true,
		JWTSecretKey:     "integration-access",
		JWTRefreshSecret: "integration-refresh",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	created, err := users.EnsureUser(ctx, "coordinator", "s3cret!", "U4RAD")
	require.NoError(t, err)
	require.True(t, created)

	camps := repository.NewStore[model.Camp](db, repository.CollectionCamps, nil)
	companies := repository.NewStore[model.Company](db, repository.CollectionCompanies, nil)

	return NewRouter(RouterConfig{
		Services: Services{
			Camps: service.NewCampService(camps, companies),
			Users: users,
			Auth:  auth,
		},
		EnableAuth: true,
	})
}

func login(t *testing.T, router http.Handler, password string) (int, dto.LoginResponse) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/login",
		`{"username": "coordinator", "password": "`+password+`"}`)
	var resp dto.LoginResponse
	if w.Code == http.StatusOK {
		decodeData(t, w, &resp)
	}
	return w.Code, resp
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestIntegration_AuthFlow(t *testing.T) {
	router := setupAuthIntegrationRouter(t)

	code, _ := login(t, router, "wrong-password")
	require.Equal(t, http.StatusUnauthorized, code)

	code, session := login(t, router, "s3cret!")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "coordinator", session.User.Username)

	w := doRequest(router, http.MethodGet, "/api/camps", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/camps", nil, bearer(session.Token))
	assert.Equal(t, http.StatusOK, w.Code)

	// The refresh token is single use.
	w = doRequest(router, http.MethodPost, "/api/auth/refresh", nil, map[string]string{RefreshTokenHeader: session.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed dto.LoginResponse
	decodeData(t, w, &refreshed)
	assert.NotEqual(t, session.RefreshToken, refreshed.RefreshToken)

	w = doRequest(router, http.MethodPost, "/api/auth/refresh", nil, map[string]string{RefreshTokenHeader: session.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	headers := bearer(refreshed.Token)
	headers[RefreshTokenHeader] = refreshed.RefreshToken
	w = doRequest(router, http.MethodPost, "/api/auth/logout", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/camps", nil, bearer(refreshed.Token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/refresh", nil, map[string]string{RefreshTokenHeader: refreshed.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIntegration_LoginRevokesPreviousRefreshToken(t *testing.T) {
	router := setupAuthIntegrationRouter(t)

	_, first := login(t, router, "s3cret!")
	_, second := login(t, router, "s3cret!")
	require.NotEmpty(t, second.RefreshToken)

	w := doRequest(router, http.MethodPost, "/api/auth/refresh", nil, map[string]string{RefreshTokenHeader: first.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/refresh", nil, map[string]string{RefreshTokenHeader: second.RefreshToken})
	assert.Equal(t, http.StatusOK, w.Code)
}
