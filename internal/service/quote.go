package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
	"golang.org/x/sync/errgroup"
)

// QuoteService prices the test plan of a company.
type QuoteService struct {
	testData repository.Repository[model.TestData]
	costs    repository.Repository[model.ServiceCost]
	services repository.Repository[model.Service]
	coupons  repository.CouponRepositoryInterface
}

// NewQuoteService creates a quote service.
func NewQuoteService(
	testData repository.Repository[model.TestData],
	costs repository.Repository[model.ServiceCost],
	services repository.Repository[model.Service],
	coupons repository.CouponRepositoryInterface,
) *QuoteService {
	return &QuoteService{testData: testData, costs: costs, services: services, coupons: coupons}
}

// Quote loads the inputs concurrently and prices every TestData row of the
// company. An unknown coupon code fails with ErrNotFound.
func (s *QuoteService) Quote(ctx context.Context, companyID int64, partnerMargin decimal.Decimal, couponCode string) (*model.Quote, error) {
	start := time.Now()
	defer func() { metrics.RecordQuote(time.Since(start)) }()

	var (
		rows     []model.TestData
		costList []model.ServiceCost
		services []model.Service
		coupon   *model.DiscountCoupon
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.testData.List(gctx, repository.ByCompany(companyID))
		return err
	})
	g.Go(func() error {
		var err error
		costList, err = s.costs.List(gctx, repository.Query{})
		return err
	})
	g.Go(func() error {
		var err error
		services, err = s.services.List(gctx, repository.Query{})
		return err
	})
	if couponCode != "" {
		g.Go(func() error {
			c, err := s.coupons.FindByCode(gctx, couponCode)
			if err != nil {
				return err
			}
			if c == nil {
				return ErrNotFound
			}
			coupon = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	costs := make(map[string]*model.ServiceCost, len(costList))
	for i := range costList {
		costs[costList[i].TestTypeName] = &costList[i]
	}
	byName := make(map[string]*model.Service, len(services))
	for i := range services {
		byName[services[i].Name] = &services[i]
	}

	quote := &model.Quote{
		CompanyID:          companyID,
		Lines:              make([]model.QuoteLine, 0, len(rows)),
		PartnerMargin:      partnerMargin,
		DiscountPercentage: decimal.Zero,
	}
	if coupon != nil {
		quote.CouponCode = coupon.Code
		quote.DiscountPercentage = coupon.DiscountPercentage
	}
	for _, row := range rows {
		quote.Lines = append(quote.Lines, model.NewQuoteLine(row, costs[row.ServiceName], byName[row.ServiceName]))
	}
	quote.Finalize()
	return quote, nil
}
