package http

import (
	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/i18n"
	"github.com/u4rad/camp-service/internal/middleware"
)

// CostHandler serves the cost detail routes.
type CostHandler struct {
	svc   CostService
	audit middleware.LogSink
}

// NewCostHandler creates a cost handler. audit may be nil.
func NewCostHandler(svc CostService, audit middleware.LogSink) *CostHandler {
	return &CostHandler{svc: svc, audit: audit}
}

// Register mounts the cost detail routes on rg.
func (h *CostHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Distribute)
	rg.GET("/sheet", h.Sheet)
}

// Distribute handles POST /api/cost_details requests.
//
// @Summary      Distribute package costs
// @Description  Writes the travel, stay and food of every package to each of its services. Other buckets are reset. A repeated submission overwrites the previous one.
// @Tags         Costs
// @Accept       json
// @Produce      json
// @Param        request body model.CostDistribution true "Package costs"
// @Success      201 {object} dto.SuccessResponse{data=dto.CostDistributionResponse} "Costs saved"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cost_details [post]
func (h *CostHandler) Distribute(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[model.CostDistribution](c)
	if err != nil {
		builder.HandleError(err)
		return
	}
	saved, err := h.svc.Distribute(c.Request.Context(), req)
	if err != nil {
		builder.HandleError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionCostsDistributed, "Package costs distributed",
		map[string]interface{}{"company_id": req.CompanyID, "saved": saved})
	builder.SuccessCreated(dto.CostDistributionResponse{
		Message: builder.translate(i18n.SuccessKeyPackageCostsSaved),
		Saved:   saved,
	})
}

// List handles GET /api/cost_details requests.
//
// @Summary      List cost details
// @Tags         Costs
// @Produce      json
// @Param        company_id query int false "Company id"
// @Success      200 {object} dto.SuccessResponse{data=[]model.CostDetails}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/cost_details [get]
func (h *CostHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	companyID, ok := QueryID(c, "company_id")
	if !ok {
		builder.InvalidID("company_id")
		return
	}
	rows, err := h.svc.ListDetails(c.Request.Context(), companyID)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(rows)
}

// Sheet handles GET /api/cost_details/sheet requests.
//
// @Summary      Package cost sheet
// @Description  Prices every package of the current selection: overhead = (base + travel + stay + food) x 1.5, t_price = overhead x 1.3
// @Tags         Costs
// @Produce      json
// @Param        company_id query int true "Company id"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageSheetResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "Not found - the company has no selection"
// @Router       /api/cost_details/sheet [get]
func (h *CostHandler) Sheet(c *gin.Context) {
	builder := NewResponseBuilder(c)

	companyID, ok := QueryID(c, "company_id")
	if !ok {
		builder.InvalidID("company_id")
		return
	}
	lines, err := h.svc.Sheet(c.Request.Context(), companyID)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(dto.PackageSheetResponse{CompanyID: companyID, Packages: lines})
}
