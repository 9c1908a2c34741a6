package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/u4rad/camp-service/internal/domain/model"
)

// TestDataHandler serves the test-case plan routes.
type TestDataHandler struct {
	*ResourceHandler[model.TestData]
	svc TestDataService
}

// NewTestDataHandler creates a test data handler.
func NewTestDataHandler(svc TestDataService) *TestDataHandler {
	return &TestDataHandler{
		ResourceHandler: NewResourceHandler[model.TestData](svc),
		svc:             svc,
	}
}

// Register mounts the test data routes on rg.
func (h *TestDataHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/by_package", h.ByPackage)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /api/test-case-data requests. The body is one row or
// an array of rows; an array is stored only when every row is valid.
//
// @Summary      Create test-case rows
// @Description  Stores one row or a list of rows. total_case and report_type_cost are computed by the server.
// @Tags         TestData
// @Accept       json
// @Produce      json
// @Param        request body []model.TestData true "Rows"
// @Success      201 {object} dto.SuccessResponse{data=[]model.TestData} "Stored rows"
// @Failure      400 {object} dto.ErrorResponse "Bad request - field errors, keyed [i].field for arrays"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/test-case-data [post]
func (h *TestDataHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	body, err := c.GetRawData()
	if err != nil {
		builder.Validation(model.FieldError("non_field_errors", "request body could not be read"))
		return
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		var row model.TestData
		if err := binding.JSON.BindBody(body, &row); err != nil {
			builder.Validation(bindingErrors(err))
			return
		}
		if err := h.svc.Create(c.Request.Context(), &row); err != nil {
			builder.HandleError(err)
			return
		}
		builder.SuccessCreated(row)
		return
	}

	// Rows are checked by the service; null elements become field errors there.
	var rows []*model.TestData
	if err := json.Unmarshal(body, &rows); err != nil {
		builder.Validation(bindingErrors(err))
		return
	}
	if err := h.svc.CreateMany(c.Request.Context(), rows); err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessCreated(rows)
}

// List handles GET /api/test-case-data requests, newest first.
//
// @Summary      List test-case rows
// @Tags         TestData
// @Produce      json
// @Param        company_id query int false "Company id"
// @Success      200 {object} dto.SuccessResponse{data=[]model.TestData}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/test-case-data [get]
func (h *TestDataHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	companyID, ok := QueryID(c, "company_id")
	if !ok {
		builder.InvalidID("company_id")
		return
	}
	rows, err := h.svc.ListNewestFirst(c.Request.Context(), companyID)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(rows)
}

// ByPackage handles GET /api/test-case-data/by_package requests.
//
// @Summary      Test-case rows of one package
// @Tags         TestData
// @Produce      json
// @Param        company_id query int true "Company id"
// @Param        package_name query string true "Package name"
// @Success      200 {object} dto.SuccessResponse{data=[]model.TestData}
// @Failure      400 {object} dto.ErrorResponse "Bad request - company_id and package_name are required"
// @Router       /api/test-case-data/by_package [get]
func (h *TestDataHandler) ByPackage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	companyID, ok := QueryID(c, "company_id")
	if !ok {
		builder.InvalidID("company_id")
		return
	}
	rows, err := h.svc.ByPackage(c.Request.Context(), companyID, c.Query("package_name"))
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.Success(http.StatusOK, rows)
}
