package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/i18n"
	"github.com/u4rad/camp-service/internal/service"
)

// CouponHandler serves coupon validation.
type CouponHandler struct {
	svc CouponService
}

// NewCouponHandler creates a coupon handler.
func NewCouponHandler(svc CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// Validate handles GET /api/validate-coupon/:code requests.
//
// @Summary      Validate coupon
// @Description  Looks up a discount coupon by its exact code
// @Tags         Coupons
// @Produce      json
// @Param        code path string true "Coupon code"
// @Success      200 {object} dto.SuccessResponse{data=dto.CouponResponse} "Coupon found"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown coupon"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/validate-coupon/{code} [get]
func (h *CouponHandler) Validate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	coupon, err := h.svc.Lookup(c.Request.Context(), c.Param("code"))
	if errors.Is(err, service.ErrNotFound) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCouponNotFound, nil)
		return
	}
	if err != nil {
		builder.HandleError(err)
		return
	}
	builder.SuccessOK(dto.CouponResponse{
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
	})
}
