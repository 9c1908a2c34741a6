package repository

import (
	"context"
	"time"

	"github.com/u4rad/camp-service/internal/domain/model"
)

// Repository is the CRUD surface shared by every entity store.
// Lookups that find nothing return a nil value and a nil error.
type Repository[T any] interface {
	Create(ctx context.Context, v *T) error
	FindByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, q Query) ([]T, error)
	Replace(ctx context.Context, id int64, v *T) (*T, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Transactor runs a function atomically.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CompanyRepositoryInterface adds camp handling to the company store.
type CompanyRepositoryInterface interface {
	Repository[model.Company]
	// DeleteCascade removes the company and all of its camps.
	DeleteCascade(ctx context.Context, id int64) (bool, error)
	// AttachCamps fills the Camps field of every company.
	AttachCamps(ctx context.Context, companies []model.Company) error
}

// SelectionRepositoryInterface defines package selection storage.
type SelectionRepositoryInterface interface {
	Repository[model.ServiceSelection]
	// ReplaceForCompany makes packages the only selection of the company.
	ReplaceForCompany(ctx context.Context, companyID int64, packages []model.Package) (*model.ServiceSelection, error)
	FindByCompany(ctx context.Context, companyID int64) (*model.ServiceSelection, error)
}

// TestDataRepositoryInterface defines test plan storage.
type TestDataRepositoryInterface interface {
	Repository[model.TestData]
	CreateMany(ctx context.Context, rows []*model.TestData) error
}

// CostDetailsRepositoryInterface defines cost bucket storage.
type CostDetailsRepositoryInterface interface {
	Repository[model.CostDetails]
	// UpsertMany writes every row keyed by (company_id, service_name),
	// overwriting all buckets of existing rows. Returns the number of rows written.
	UpsertMany(ctx context.Context, rows []model.CostDetails) (int, error)
}

// CouponRepositoryInterface defines discount coupon storage.
type CouponRepositoryInterface interface {
	Repository[model.DiscountCoupon]
	FindByCode(ctx context.Context, code string) (*model.DiscountCoupon, error)
}

// SummaryRepositoryInterface defines cost summary storage.
type SummaryRepositoryInterface interface {
	Repository[model.CostSummary]
	// NextBillingSequence returns the next summary number of the day, from 1.
	NextBillingSequence(ctx context.Context, day time.Time) (int64, error)
}

// UserRepositoryInterface defines user storage.
type UserRepositoryInterface interface {
	Repository[model.User]
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// TokenRepositoryInterface defines refresh token and blacklist storage.
type TokenRepositoryInterface interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, tokenString string) (*model.Token, error)
	DeleteByToken(ctx context.Context, tokenString string) error
	DeleteByUserID(ctx context.Context, userID int64, tokenType string) error
	IsBlacklisted(ctx context.Context, tokenString string) (bool, error)
	CleanupExpired(ctx context.Context) error
}

// LogsRepositoryInterface defines request and audit log storage.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

var (
	_ Repository[model.Camp]         = (*Store[model.Camp, *model.Camp])(nil)
	_ TestDataRepositoryInterface    = (*Store[model.TestData, *model.TestData])(nil)
	_ CompanyRepositoryInterface     = (*CompanyRepository)(nil)
	_ SelectionRepositoryInterface   = (*SelectionRepository)(nil)
	_ CostDetailsRepositoryInterface = (*CostDetailsRepository)(nil)
	_ CouponRepositoryInterface      = (*CouponRepository)(nil)
	_ SummaryRepositoryInterface     = (*SummaryRepository)(nil)
	_ UserRepositoryInterface        = (*UserRepository)(nil)
	_ TokenRepositoryInterface       = (*TokenRepository)(nil)
	_ LogsRepositoryInterface        = (*LogsRepositoryWithCircuitBreaker)(nil)
	_ Transactor                     = (*TxRunner)(nil)
)
