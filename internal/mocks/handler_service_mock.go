// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
)

// MockResourceService mocks service.ResourceService for any entity.
type MockResourceService[T any] struct {
	mock.Mock
}

func (m *MockResourceService[T]) Create(ctx context.Context, v *T) error {
	args := m.MethodCalled("Create", ctx, v)
	return args.Error(0)
}

func (m *MockResourceService[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.MethodCalled("Get", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceService[T]) List(ctx context.Context, q repository.Query) ([]T, error) {
	args := m.MethodCalled("List", ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockResourceService[T]) Update(ctx context.Context, id int64, v *T) (*T, error) {
	args := m.MethodCalled("Update", ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceService[T]) Delete(ctx context.Context, id int64) error {
	args := m.MethodCalled("Delete", ctx, id)
	return args.Error(0)
}

type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) Replace(ctx context.Context, sel *model.ServiceSelection) (*model.ServiceSelection, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceSelection), args.Error(1)
}

func (m *MockSelectionService) ReplaceByID(ctx context.Context, id int64, sel *model.ServiceSelection) (*model.ServiceSelection, error) {
	args := m.Called(ctx, id, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceSelection), args.Error(1)
}

func (m *MockSelectionService) Get(ctx context.Context, id int64) (*model.ServiceSelection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceSelection), args.Error(1)
}

func (m *MockSelectionService) List(ctx context.Context, companyID int64) ([]model.ServiceSelection, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceSelection), args.Error(1)
}

func (m *MockSelectionService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTestDataService struct {
	MockResourceService[model.TestData]
}

func (m *MockTestDataService) CreateMany(ctx context.Context, rows []*model.TestData) error {
	return m.MethodCalled("CreateMany", ctx, rows).Error(0)
}

func (m *MockTestDataService) ListNewestFirst(ctx context.Context, companyID int64) ([]model.TestData, error) {
	args := m.MethodCalled("ListNewestFirst", ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TestData), args.Error(1)
}

func (m *MockTestDataService) ByPackage(ctx context.Context, companyID int64, packageName string) ([]model.TestData, error) {
	args := m.MethodCalled("ByPackage", ctx, companyID, packageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TestData), args.Error(1)
}

type MockCostService struct {
	mock.Mock
}

func (m *MockCostService) Distribute(ctx context.Context, d *model.CostDistribution) (int, error) {
	args := m.Called(ctx, d)
	return args.Int(0), args.Error(1)
}

func (m *MockCostService) ListDetails(ctx context.Context, companyID int64) ([]model.CostDetails, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CostDetails), args.Error(1)
}

func (m *MockCostService) Sheet(ctx context.Context, companyID int64) ([]model.PackageSheetLine, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackageSheetLine), args.Error(1)
}

type MockCouponService struct {
	MockResourceService[model.DiscountCoupon]
}

func (m *MockCouponService) Lookup(ctx context.Context, code string) (*model.DiscountCoupon, error) {
	args := m.MethodCalled("Lookup", ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiscountCoupon), args.Error(1)
}

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, companyID int64, partnerMargin decimal.Decimal, couponCode string) (*model.Quote, error) {
	args := m.Called(ctx, companyID, partnerMargin, couponCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

type MockSummaryService struct {
	MockResourceService[model.CostSummary]
}

func (m *MockSummaryService) ExportSummary(ctx context.Context, id int64) ([]byte, string, error) {
	args := m.MethodCalled("ExportSummary", ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockEstimationService struct {
	mock.Mock
}

func (m *MockEstimationService) Generate(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockEstimationService) Upload(ctx context.Context, companyName, filename string, r io.Reader) (*model.Estimation, error) {
	args := m.Called(ctx, companyName, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Estimation), args.Error(1)
}

func (m *MockEstimationService) List(ctx context.Context) ([]model.Estimation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Estimation), args.Error(1)
}

func (m *MockEstimationService) Open(ctx context.Context, id int64) (io.ReadCloser, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*model.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserService) EnsureUser(ctx context.Context, username, password, companyName string) (bool, error) {
	args := m.Called(ctx, username, password, companyName)
	return args.Bool(0), args.Error(1)
}

var _ service.ResourceService[model.Camp] = (*MockResourceService[model.Camp])(nil)
