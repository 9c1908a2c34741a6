//go:build !integration

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/mocks"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
)

type quoteFixture struct {
	testData *mocks.MockRepository[model.TestData]
	costs    *mocks.MockRepository[model.ServiceCost]
	services *mocks.MockRepository[model.Service]
	coupons  *mocks.MockCouponRepository
	svc      *service.QuoteService
}

func newQuoteFixture() *quoteFixture {
	f := &quoteFixture{
		testData: new(mocks.MockRepository[model.TestData]),
		costs:    new(mocks.MockRepository[model.ServiceCost]),
		services: new(mocks.MockRepository[model.Service]),
		coupons:  new(mocks.MockCouponRepository),
	}
	f.svc = service.NewQuoteService(f.testData, f.costs, f.services, f.coupons)

	f.testData.On("List", mock.Anything, repository.ByCompany(1)).Return([]model.TestData{
		{PackageName: "Basic", ServiceName: "CBC", TotalCase: 100},
		{PackageName: "Basic", ServiceName: "Vision", TotalCase: 40, ReportTypeCost: decimal.NewFromInt(1000)},
	}, nil)
	f.costs.On("List", mock.Anything, repository.Query{}).Return([]model.ServiceCost{
		{TestTypeName: "CBC", Salary: decimal.NewFromInt(3), Reporting: decimal.NewFromInt(2), Consumables: decimal.NewFromInt(50)},
	}, nil)
	f.services.On("List", mock.Anything, repository.Query{}).Return([]model.Service{
		{Name: "Vision", PriceRanges: []model.PriceRange{
			{MaxCases: 100, Price: decimal.NewFromInt(20)},
			{MaxCases: 50, Price: decimal.NewFromInt(30)},
		}},
	}, nil)
	return f
}

func TestQuoteService_Quote(t *testing.T) {
	f := newQuoteFixture()
	f.coupons.On("FindByCode", mock.Anything, "SAVE10").
		Return(&model.DiscountCoupon{Code: "SAVE10", DiscountPercentage: decimal.NewFromInt(10)}, nil)

	quote, err := f.svc.Quote(context.Background(), 1, decimal.NewFromInt(20), "SAVE10")
	require.NoError(t, err)
	require.Len(t, quote.Lines, 2)

	assert.Equal(t, model.RateSourceServiceCost, quote.Lines[0].Source)
	assert.True(t, decimal.NewFromInt(500).Equal(quote.Lines[0].Amount))
	assert.Equal(t, model.RateSourcePriceTier, quote.Lines[1].Source)
	assert.True(t, decimal.NewFromInt(2200).Equal(quote.Lines[1].Amount))

	// 2700 * 1.2 * 0.9
	assert.True(t, decimal.NewFromInt(2700).Equal(quote.Subtotal))
	assert.Equal(t, "2916", quote.GrandTotal.String())
	assert.Equal(t, "SAVE10", quote.CouponCode)
}

func TestQuoteService_NoCoupon(t *testing.T) {
	f := newQuoteFixture()

	quote, err := f.svc.Quote(context.Background(), 1, decimal.Zero, "")
	require.NoError(t, err)
	assert.Equal(t, "2700", quote.GrandTotal.String())
	f.coupons.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
}

func TestQuoteService_UnknownCoupon(t *testing.T) {
	f := newQuoteFixture()
	f.coupons.On("FindByCode", mock.Anything, "NOPE").Return(nil, nil)

	_, err := f.svc.Quote(context.Background(), 1, decimal.Zero, "NOPE")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestQuoteService_LoadFailure(t *testing.T) {
	f := &quoteFixture{
		testData: new(mocks.MockRepository[model.TestData]),
		costs:    new(mocks.MockRepository[model.ServiceCost]),
		services: new(mocks.MockRepository[model.Service]),
		coupons:  new(mocks.MockCouponRepository),
	}
	f.testData.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	f.costs.On("List", mock.Anything, mock.Anything).Return([]model.ServiceCost{}, nil)
	f.services.On("List", mock.Anything, mock.Anything).Return([]model.Service{}, nil)
	svc := service.NewQuoteService(f.testData, f.costs, f.services, f.coupons)

	_, err := svc.Quote(context.Background(), 1, decimal.Zero, "")
	assert.EqualError(t, err, "timeout")
}
