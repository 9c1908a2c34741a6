package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/middleware"
)

// TokenRevoker removes every token of a user.
type TokenRevoker interface {
	InvalidateUserTokens(ctx context.Context, userID int64) error
}

// UserHandler serves the back-office account routes.
type UserHandler struct {
	svc     UserService
	revoker TokenRevoker
	audit   middleware.LogSink
}

// NewUserHandler creates a user handler. revoker and audit may be nil.
func NewUserHandler(svc UserService, revoker TokenRevoker, audit middleware.LogSink) *UserHandler {
	return &UserHandler{svc: svc, revoker: revoker, audit: audit}
}

// Register mounts the user routes on rg.
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /api/users requests.
//
// @Summary      Create user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "Account"
// @Success      201 {object} dto.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Conflict - username taken"
// @Router       /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateUserRequest](c)
	if err != nil {
		builder.HandleError(err)
		return
	}
	user, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		builder.HandleError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionUserCreated, "User created",
		map[string]interface{}{"created_user": user.Username})
	builder.SuccessCreated(dto.NewUserResponse(user))
}

// List handles GET /api/users requests.
//
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.UserResponse}
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		builder.HandleError(err)
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	builder.SuccessOK(out)
}

// Get handles GET /api/users/:id requests.
func (h *UserHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(dto.NewUserResponse(user))
}

// Update handles PUT /api/users/:id requests.
//
// @Summary      Update user
// @Description  Changes the company name and, when given, the password
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id path int true "User id"
// @Param        request body dto.UpdateUserRequest true "Changes"
// @Success      200 {object} dto.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	req, err := BuildRequest[dto.UpdateUserRequest](c)
	if err != nil {
		builder.HandleError(err)
		return
	}
	user, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(dto.NewUserResponse(user))
}

// Delete handles DELETE /api/users/:id requests and revokes the tokens of
// the account.
func (h *UserHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		builder.HandleError(err)
		return
	}
	if h.revoker != nil {
		if err := h.revoker.InvalidateUserTokens(c.Request.Context(), id); err != nil {
			log.Warn().Err(err).Int64("user_id", id).Msg("failed to revoke tokens of deleted user")
		}
	}
	c.Status(http.StatusNoContent)
}
