package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/i18n"
	"github.com/u4rad/camp-service/internal/middleware"
)

// PDFContentType is the media type of estimate files.
const PDFContentType = "application/pdf"

// EstimationHandler serves estimate PDF generation, upload and download.
type EstimationHandler struct {
	svc            EstimationService
	audit          middleware.LogSink
	maxUploadBytes int64
}

// NewEstimationHandler creates an estimation handler. A maxUploadBytes of
// zero or less leaves uploads unbounded.
func NewEstimationHandler(svc EstimationService, audit middleware.LogSink, maxUploadBytes int64) *EstimationHandler {
	return &EstimationHandler{svc: svc, audit: audit, maxUploadBytes: maxUploadBytes}
}

// Register mounts the estimation routes on rg. Methods other than POST on
// the upload route get 405.
func (h *EstimationHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload-pdf", h.Upload)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		rg.Handle(method, "/upload-pdf", h.UploadMethodNotAllowed)
	}
	rg.GET("/view-pdf/:id", h.View)
	rg.GET("/estimations", h.List)
	rg.GET("/estimations/:id/file", h.Download)
}

// View handles GET /api/view-pdf/:id requests.
//
// @Summary      Generate estimate PDF
// @Description  Renders the estimate PDF, stores it and returns it as an attachment
// @Tags         Estimations
// @Produce      application/pdf
// @Param        id path int true "Estimate id"
// @Success      200 {file} file "PDF"
// @Failure      400 {object} dto.ErrorResponse "Bad request - id is not an integer"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/view-pdf/{id} [get]
func (h *EstimationHandler) View(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if _, err := strconv.ParseUint(c.Param("id"), 10, 63); err != nil {
		builder.InvalidID("id")
		return
	}
	data, name, err := h.svc.Generate(c.Request.Context())
	if err != nil {
		builder.HandleError(err)
		return
	}
	attachment(c, name, PDFContentType, data)
}

// Upload handles POST /api/upload-pdf requests.
//
// @Summary      Upload estimate PDF
// @Description  Stores the uploaded file unchanged and records an estimation for it
// @Tags         Estimations
// @Accept       multipart/form-data
// @Produce      json
// @Param        pdf formData file true "PDF file"
// @Param        company_name formData string false "Company name" default(Unknown Company)
// @Success      201 {object} dto.SuccessResponse{data=dto.UploadPDFResponse} "Stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - no PDF file provided"
// @Failure      405 {object} dto.ErrorResponse "Method not allowed"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/upload-pdf [post]
func (h *EstimationHandler) Upload(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.maxUploadBytes > 0 {
		if c.Request.ContentLength > h.maxUploadBytes {
			builder.Validation(h.tooLarge())
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("pdf")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			builder.Validation(h.tooLarge())
			return
		}
		builder.Validation(model.FieldError("pdf", builder.translate(i18n.ErrKeyMissingPDF)))
		return
	}

	file, err := header.Open()
	if err != nil {
		builder.HandleError(fmt.Errorf("open upload: %w", err))
		return
	}
	defer func() { _ = file.Close() }()

	est, err := h.svc.Upload(c.Request.Context(), c.PostForm("company_name"), header.Filename, file)
	if err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionPDFUploaded, "PDF upload failed", err, nil)
		builder.HandleError(err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionPDFUploaded, "PDF uploaded",
		map[string]interface{}{"pdf_id": est.ID, "company_name": est.CompanyName})
	builder.SuccessCreated(dto.UploadPDFResponse{
		Message: builder.translate(i18n.SuccessKeyPDFUploaded),
		PDFID:   est.ID,
	})
}

func (h *EstimationHandler) tooLarge() model.ValidationErrors {
	return model.FieldError("pdf", fmt.Sprintf("file exceeds the limit of %d bytes", h.maxUploadBytes))
}

// UploadMethodNotAllowed answers non-POST requests on the upload route.
func (h *EstimationHandler) UploadMethodNotAllowed(c *gin.Context) {
	NewResponseBuilder(c).Error(http.StatusMethodNotAllowed, i18n.ErrKeyMethodNotAllowed, nil)
}

// List handles GET /api/estimations requests, newest first.
//
// @Summary      List estimations
// @Tags         Estimations
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Estimation}
// @Router       /api/estimations [get]
func (h *EstimationHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(items)
}

// Download handles GET /api/estimations/:id/file requests.
//
// @Summary      Download uploaded estimate
// @Tags         Estimations
// @Produce      application/pdf
// @Param        id path int true "Estimation id"
// @Success      200 {file} file "PDF"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/estimations/{id}/file [get]
func (h *EstimationHandler) Download(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := PathID(c)
	if !ok {
		builder.InvalidID("id")
		return
	}
	rc, name, err := h.svc.Open(c.Request.Context(), id)
	if err != nil {
		builder.HandleError(err)
		return
	}
	defer func() { _ = rc.Close() }()

	c.Header("Content-Disposition", contentDisposition(name))
	c.Header("Content-Type", PDFContentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		log.Warn().Err(err).Int64("estimation_id", id).Msg("estimation download interrupted")
	}
}

// attachment writes data as a file download.
func attachment(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", contentDisposition(name))
	c.Data(http.StatusOK, contentType, data)
}

func contentDisposition(name string) string {
	return fmt.Sprintf("attachment; filename=%q", name)
}
