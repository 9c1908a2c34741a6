package repository

import (
	"context"
	"time"

	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
)

// CouponRepository stores discount coupons; code is unique.
type CouponRepository struct {
	*Store[model.DiscountCoupon, *model.DiscountCoupon]
}

// NewCouponRepository creates a coupon repository.
func NewCouponRepository(db *MongoDB, cb *circuitbreaker.CircuitBreaker) *CouponRepository {
	return &CouponRepository{Store: NewStore[model.DiscountCoupon](db, CollectionCoupons, cb)}
}

// FindByCode returns the coupon with exactly this code, or nil.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*model.DiscountCoupon, error) {
	return r.FindOne(ctx, bson.M{"code": code})
}

// SummaryRepository stores cost summaries and numbers them per day.
type SummaryRepository struct {
	*Store[model.CostSummary, *model.CostSummary]
}

// NewSummaryRepository creates a cost summary repository.
func NewSummaryRepository(db *MongoDB, cb *circuitbreaker.CircuitBreaker) *SummaryRepository {
	return &SummaryRepository{Store: NewStore[model.CostSummary](db, CollectionCostSummaries, cb)}
}

// NextBillingSequence increments the counter of the given UTC day.
func (r *SummaryRepository) NextBillingSequence(ctx context.Context, day time.Time) (int64, error) {
	name := "billing-" + day.UTC().Format("20060102")
	return guardValue(ctx, r.breaker, func() (int64, error) {
		return r.sequence.Next(ctx, name)
	})
}
