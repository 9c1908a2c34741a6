package http

import (
	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/dto"
)

// QuoteHandler serves price quotes.
type QuoteHandler struct {
	svc QuoteService
}

// NewQuoteHandler creates a quote handler.
func NewQuoteHandler(svc QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

// Quote handles POST /api/estimates/quote requests.
//
// @Summary      Quote a test plan
// @Description  Prices every test-case row of the company. grand_total = subtotal x (100 + partner_margin)/100 x (100 - discount)/100.
// @Tags         Estimates
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Quote request"
// @Success      200 {object} dto.SuccessResponse{data=model.Quote} "Quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown coupon"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/estimates/quote [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		builder.HandleError(err)
		return
	}
	quote, err := h.svc.Quote(c.Request.Context(), req.CompanyID, req.PartnerMargin, req.CouponCode)
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(quote)
}
