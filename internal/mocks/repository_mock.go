// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
)

// MockRepository mocks repository.Repository for any entity.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) Create(ctx context.Context, v *T) error {
	args := m.MethodCalled("Create", ctx, v)
	return args.Error(0)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.MethodCalled("FindByID", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) List(ctx context.Context, q repository.Query) ([]T, error) {
	args := m.MethodCalled("List", ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Replace(ctx context.Context, id int64, v *T) (*T, error) {
	args := m.MethodCalled("Replace", ctx, id, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.MethodCalled("Delete", ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCompanyRepository struct {
	MockRepository[model.Company]
}

func (m *MockCompanyRepository) DeleteCascade(ctx context.Context, id int64) (bool, error) {
	args := m.MethodCalled("DeleteCascade", ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) AttachCamps(ctx context.Context, companies []model.Company) error {
	args := m.MethodCalled("AttachCamps", ctx, companies)
	return args.Error(0)
}

type MockSelectionRepository struct {
	MockRepository[model.ServiceSelection]
}

func (m *MockSelectionRepository) ReplaceForCompany(ctx context.Context, companyID int64, packages []model.Package) (*model.ServiceSelection, error) {
	args := m.MethodCalled("ReplaceForCompany", ctx, companyID, packages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceSelection), args.Error(1)
}

func (m *MockSelectionRepository) FindByCompany(ctx context.Context, companyID int64) (*model.ServiceSelection, error) {
	args := m.MethodCalled("FindByCompany", ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceSelection), args.Error(1)
}

type MockTestDataRepository struct {
	MockRepository[model.TestData]
}

func (m *MockTestDataRepository) CreateMany(ctx context.Context, rows []*model.TestData) error {
	args := m.MethodCalled("CreateMany", ctx, rows)
	return args.Error(0)
}

type MockCostDetailsRepository struct {
	MockRepository[model.CostDetails]
}

func (m *MockCostDetailsRepository) UpsertMany(ctx context.Context, rows []model.CostDetails) (int, error) {
	args := m.MethodCalled("UpsertMany", ctx, rows)
	return args.Int(0), args.Error(1)
}

type MockCouponRepository struct {
	MockRepository[model.DiscountCoupon]
}

func (m *MockCouponRepository) FindByCode(ctx context.Context, code string) (*model.DiscountCoupon, error) {
	args := m.MethodCalled("FindByCode", ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiscountCoupon), args.Error(1)
}

type MockSummaryRepository struct {
	MockRepository[model.CostSummary]
}

func (m *MockSummaryRepository) NextBillingSequence(ctx context.Context, day time.Time) (int64, error) {
	args := m.MethodCalled("NextBillingSequence", ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	MockRepository[model.User]
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.MethodCalled("FindByUsername", ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTransactor runs the function directly, recording the call.
type MockTransactor struct {
	mock.Mock
}

func (m *MockTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.MethodCalled("WithTransaction", ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

var (
	_ repository.CompanyRepositoryInterface     = (*MockCompanyRepository)(nil)
	_ repository.SelectionRepositoryInterface   = (*MockSelectionRepository)(nil)
	_ repository.TestDataRepositoryInterface    = (*MockTestDataRepository)(nil)
	_ repository.CostDetailsRepositoryInterface = (*MockCostDetailsRepository)(nil)
	_ repository.CouponRepositoryInterface      = (*MockCouponRepository)(nil)
	_ repository.SummaryRepositoryInterface     = (*MockSummaryRepository)(nil)
	_ repository.UserRepositoryInterface        = (*MockUserRepository)(nil)
	_ repository.Transactor                     = (*MockTransactor)(nil)
)
