package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/i18n"
	"github.com/u4rad/camp-service/internal/middleware"
	"github.com/u4rad/camp-service/internal/service"
)

// RefreshTokenHeader carries the refresh token on refresh and logout.
const RefreshTokenHeader = "X-Refresh-Token"

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
	audit       middleware.LogSink
}

// NewAuthHandler creates a new authentication handler. audit may be nil.
func NewAuthHandler(authService service.AuthService, audit middleware.LogSink) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login
// @Description  Authenticates a back-office user and returns an access and a refresh token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.LoginRequest](c)
	if err != nil {
		builder.HandleError(err)
		return
	}

	tokenPair, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.AuditLogError(h.audit, c, middleware.ActionLogin, "Failed login attempt", err,
				map[string]interface{}{"username": req.Username})
		}
		builder.HandleError(err)
		return
	}

	c.Set(string(middleware.UserIDKey), user.ID)
	c.Set(string(middleware.UsernameKey), user.Username)
	middleware.AuditLog(h.audit, c, middleware.ActionLogin, "User logged in", nil)

	builder.SuccessOK(loginResponse(tokenPair, user))
}

// RefreshToken handles POST /api/auth/refresh requests.
//
// @Summary      Refresh tokens
// @Description  Exchanges a refresh token for a new token pair. The used refresh token is revoked.
// @Tags         Auth
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "New token pair"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	refreshToken := c.GetHeader(RefreshTokenHeader)
	if refreshToken == "" {
		builder.Validation(model.FieldError(RefreshTokenHeader, "this header is required"))
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	})
}

// Logout handles POST /api/auth/logout requests.
//
// @Summary      Logout
// @Description  Revokes the access token of the Authorization header and the refresh token of X-Refresh-Token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "Logged out"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	accessToken, ok := middleware.BearerToken(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}
	refreshToken := c.GetHeader(RefreshTokenHeader)
	if refreshToken == "" {
		builder.Validation(model.FieldError(RefreshTokenHeader, "this header is required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), accessToken, refreshToken); err != nil {
		builder.HandleError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionLogout, "User logged out", nil)
	builder.Message(http.StatusOK, i18n.SuccessKeyLoggedOut)
}

func loginResponse(pair *dto.TokenPair, user *model.User) dto.LoginResponse {
	return dto.LoginResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         dto.NewUserResponse(user),
	}
}
