package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/middleware"
)

// SelectionHandler serves the package selection routes.
type SelectionHandler struct {
	svc   SelectionService
	audit middleware.LogSink
}

// NewSelectionHandler creates a selection handler. audit may be nil.
func NewSelectionHandler(svc SelectionService, audit middleware.LogSink) *SelectionHandler {
	return &SelectionHandler{svc: svc, audit: audit}
}

// Register mounts the selection routes on rg.
func (h *SelectionHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Replace)
	rg.POST("/create_services", h.Replace)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.ReplaceByID)
	rg.DELETE("/:id", h.Delete)
}

// Replace handles POST /api/service-selection requests.
//
// @Summary      Replace package selection
// @Description  Makes the packages of the body the only selection of the company
// @Tags         Selection
// @Accept       json
// @Produce      json
// @Param        request body dto.ServiceSelectionRequest true "Selection"
// @Success      201 {object} dto.SuccessResponse{data=model.ServiceSelection} "Stored selection"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing company_id or packages"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/service-selection [post]
// @Router       /api/service-selection/create_services [post]
func (h *SelectionHandler) Replace(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ServiceSelectionRequest](c)
	if err != nil {
		builder.HandleError(err)
		return
	}
	saved, err := h.svc.Replace(c.Request.Context(), req.ToModel())
	if err != nil {
		builder.HandleError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionSelectionReplaced, "Service selection replaced",
		map[string]interface{}{"company_id": saved.CompanyID})
	builder.SuccessCreated(saved)
}

// ReplaceByID handles PUT /api/service-selection/:id requests. The company
// of the stored selection is kept.
//
// @Summary      Update package selection
// @Tags         Selection
// @Accept       json
// @Produce      json
// @Param        id path int true "Selection id"
// @Param        request body dto.ServiceSelectionRequest true "Selection"
// @Success      200 {object} dto.SuccessResponse{data=model.ServiceSelection}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/service-selection/{id} [put]
func (h *SelectionHandler) ReplaceByID(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	var req dto.ServiceSelectionRequest
	// company_id is taken from the stored selection, so only bind here.
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Validation(bindingErrors(err))
		return
	}
	saved, err := h.svc.ReplaceByID(c.Request.Context(), id, req.ToModel())
	if err != nil {
		builder.HandleError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionSelectionReplaced, "Service selection replaced",
		map[string]interface{}{"company_id": saved.CompanyID})
	builder.SuccessOK(saved)
}

// List handles GET /api/service-selection requests.
//
// @Summary      List package selections
// @Tags         Selection
// @Produce      json
// @Param        company_id query int false "Company id"
// @Success      200 {object} dto.SuccessResponse{data=[]model.ServiceSelection}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/service-selection [get]
func (h *SelectionHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	companyID, ok := QueryID(c, "company_id")
	if !ok {
		builder.InvalidID("company_id")
		return
	}
	items, err := h.svc.List(c.Request.Context(), companyID)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(items)
}

// Get handles GET /api/service-selection/:id requests.
func (h *SelectionHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	sel, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(sel)
}

// Delete handles DELETE /api/service-selection/:id requests.
func (h *SelectionHandler) Delete(c *gin.Context) {
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
	c.Status(http.StatusNoContent)
}
