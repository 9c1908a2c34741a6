package http

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/service"
)

// SelectionService manages package selections.
type SelectionService interface {
	Replace(ctx context.Context, sel *model.ServiceSelection) (*model.ServiceSelection, error)
	ReplaceByID(ctx context.Context, id int64, sel *model.ServiceSelection) (*model.ServiceSelection, error)
	Get(ctx context.Context, id int64) (*model.ServiceSelection, error)
	List(ctx context.Context, companyID int64) ([]model.ServiceSelection, error)
	Delete(ctx context.Context, id int64) error
}

// TestDataService manages test-case plans.
type TestDataService interface {
	service.ResourceService[model.TestData]
	CreateMany(ctx context.Context, rows []*model.TestData) error
	ListNewestFirst(ctx context.Context, companyID int64) ([]model.TestData, error)
	ByPackage(ctx context.Context, companyID int64, packageName string) ([]model.TestData, error)
}

// CostService distributes package costs and prices the package sheet.
type CostService interface {
	Distribute(ctx context.Context, d *model.CostDistribution) (int, error)
	ListDetails(ctx context.Context, companyID int64) ([]model.CostDetails, error)
	Sheet(ctx context.Context, companyID int64) ([]model.PackageSheetLine, error)
}

// CouponService manages discount coupons.
type CouponService interface {
	service.ResourceService[model.DiscountCoupon]
	Lookup(ctx context.Context, code string) (*model.DiscountCoupon, error)
}

// QuoteService prices the test plan of a company.
type QuoteService interface {
	Quote(ctx context.Context, companyID int64, partnerMargin decimal.Decimal, couponCode string) (*model.Quote, error)
}

// SummaryService manages cost summaries.
type SummaryService interface {
	service.ResourceService[model.CostSummary]
	ExportSummary(ctx context.Context, id int64) ([]byte, string, error)
}

// EstimationService renders and stores estimate PDFs.
type EstimationService interface {
	Generate(ctx context.Context) ([]byte, string, error)
	Upload(ctx context.Context, companyName, filename string, r io.Reader) (*model.Estimation, error)
	List(ctx context.Context) ([]model.Estimation, error)
	Open(ctx context.Context, id int64) (io.ReadCloser, string, error)
}

// UserService manages back-office accounts.
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

var (
	_ SelectionService  = (*service.SelectionService)(nil)
	_ TestDataService   = (*service.TestDataService)(nil)
	_ CostService       = (*service.CostService)(nil)
	_ CouponService     = (*service.CouponService)(nil)
	_ QuoteService      = (*service.QuoteService)(nil)
	_ SummaryService    = (*service.SummaryService)(nil)
	_ EstimationService = (*service.EstimationService)(nil)
	_ UserService       = (*service.UserService)(nil)
)
