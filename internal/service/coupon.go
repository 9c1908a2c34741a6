package service

import (
	"context"
	"strings"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
)

// CouponService manages discount coupons.
type CouponService struct {
	*CRUDService[model.DiscountCoupon]
	repo repository.CouponRepositoryInterface
}

// NewCouponService creates a coupon service.
func NewCouponService(repo repository.CouponRepositoryInterface) *CouponService {
	return &CouponService{CRUDService: NewCRUDService[model.DiscountCoupon](repo), repo: repo}
}

// Lookup returns the coupon whose code matches exactly, or ErrNotFound.
func (s *CouponService) Lookup(ctx context.Context, code string) (*model.DiscountCoupon, error) {
	coupon, err := s.find(ctx, code)
	metrics.RecordOperation(metrics.OpCouponValidate, err)
	return coupon, err
}

func (s *CouponService) find(ctx context.Context, code string) (*model.DiscountCoupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrNotFound
	}
	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrNotFound
	}
	return coupon, nil
}
