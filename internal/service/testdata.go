package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// TestDataService manages test-case plans. Every write recomputes
// total_case and report_type_cost.
type TestDataService struct {
	*CRUDService[model.TestData]
	repo repository.TestDataRepositoryInterface
	tx   repository.Transactor
}

// NewTestDataService creates a test data service.
func NewTestDataService(repo repository.TestDataRepositoryInterface, tx repository.Transactor) *TestDataService {
	crud := NewCRUDService[model.TestData](repo).WithPrepare(func(_ context.Context, td *model.TestData) error {
		return td.Compute()
	})
	return &TestDataService{CRUDService: crud, repo: repo, tx: tx}
}

// CreateMany validates every row before storing any of them.
// Field errors of row i are reported as "[i].field".
func (s *TestDataService) CreateMany(ctx context.Context, rows []*model.TestData) error {
	if len(rows) == 0 {
		return model.FieldError("non_field_errors", "at least one row is required")
	}

	errs := model.ValidationErrors{}
	for i, row := range rows {
		if row == nil {
			errs[fmt.Sprintf("[%d].non_field_errors", i)] = "row must be an object"
			continue
		}
		err := row.Compute()
		var fields model.ValidationErrors
		if errors.As(err, &fields) {
			for field, msg := range fields {
				errs[fmt.Sprintf("[%d].%s", i, field)] = msg
			}
		} else if err != nil {
			return err
		}
	}
	if len(errs) > 0 {
		return errs
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.repo.CreateMany(ctx, rows)
	})
	metrics.RecordOperation(metrics.OpTestDataCreate, err)
	return storeError(err)
}

// ListNewestFirst returns the rows of a company, or every row when
// companyID is zero, newest first.
func (s *TestDataService) ListNewestFirst(ctx context.Context, companyID int64) ([]model.TestData, error) {
	q := repository.ByCompany(companyID)
	q.Sort = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	return s.List(ctx, q)
}

// ByPackage returns the rows of one package of a company.
func (s *TestDataService) ByPackage(ctx context.Context, companyID int64, packageName string) ([]model.TestData, error) {
	errs := model.ValidationErrors{}
	if packageName == "" {
		errs["package_name"] = "this field is required"
	}
	if companyID <= 0 {
		errs["company_id"] = "this field is required"
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s.List(ctx, repository.Query{
		Filter: bson.M{"company_id": companyID, "package_name": packageName},
	})
}
