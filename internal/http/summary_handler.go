package http

import (
	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/middleware"
)

// XLSXContentType is the media type of exported workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SummaryHandler serves the cost summary routes.
type SummaryHandler struct {
	*ResourceHandler[model.CostSummary]
	svc SummaryService
}

// NewSummaryHandler creates a cost summary handler. audit may be nil.
func NewSummaryHandler(svc SummaryService, audit middleware.LogSink) *SummaryHandler {
	return &SummaryHandler{
		ResourceHandler: NewResourceHandler[model.CostSummary](svc,
			WithCompanyFilter(),
			WithAudit(audit, middleware.ActionSummaryCreated, "")),
		svc: svc,
	}
}

// Register mounts the summary routes on rg.
func (h *SummaryHandler) Register(rg *gin.RouterGroup) {
	h.ResourceHandler.Register(rg)
	rg.GET("/:id/export", h.Export)
}

// Export handles GET /api/costsummaries/:id/export requests.
//
// @Summary      Export cost summary
// @Description  Downloads the estimate as an XLSX workbook named after its billing number
// @Tags         Summaries
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path int true "Summary id"
// @Success      200 {file} file "Workbook"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/costsummaries/{id}/export [get]
func (h *SummaryHandler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	data, name, err := h.svc.ExportSummary(c.Request.Context(), id)
	if err != nil {
		builder.HandleError(err)
		return
	}
	attachment(c, name, XLSXContentType, data)
}
