package service

import (
	"context"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
)

// CostService distributes package logistics costs and prices the package sheet.
type CostService struct {
	details    repository.CostDetailsRepositoryInterface
	selections repository.SelectionRepositoryInterface
	costs      repository.Repository[model.ServiceCost]
	tx         repository.Transactor
}

// NewCostService creates a cost service.
func NewCostService(
	details repository.CostDetailsRepositoryInterface,
	selections repository.SelectionRepositoryInterface,
	costs repository.Repository[model.ServiceCost],
	tx repository.Transactor,
) *CostService {
	return &CostService{details: details, selections: selections, costs: costs, tx: tx}
}

// Distribute writes the travel, stay and food of every package to each of
// its services and resets their other buckets. Returns the number of rows
// written, zero when no package lists a service.
func (s *CostService) Distribute(ctx context.Context, d *model.CostDistribution) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	rows := d.Rows()
	if len(rows) == 0 {
		return 0, nil
	}

	var n int
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.details.UpsertMany(ctx, rows)
		return err
	})
	metrics.RecordOperation(metrics.OpCostDistribute, err)
	if err != nil {
		return 0, storeError(err)
	}
	return n, nil
}

// ListDetails returns the cost rows of the company, or every row when
// companyID is zero.
func (s *CostService) ListDetails(ctx context.Context, companyID int64) ([]model.CostDetails, error) {
	return s.details.List(ctx, repository.ByCompany(companyID))
}

// Sheet prices every package of the current selection of the company.
func (s *CostService) Sheet(ctx context.Context, companyID int64) ([]model.PackageSheetLine, error) {
	if companyID <= 0 {
		return nil, model.FieldError("company_id", "this field is required")
	}
	sel, err := s.selections.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, ErrNotFound
	}

	costList, err := s.costs.List(ctx, repository.Query{})
	if err != nil {
		return nil, err
	}
	costs := make(map[string]model.ServiceCost, len(costList))
	for _, c := range costList {
		costs[c.TestTypeName] = c
	}

	detailList, err := s.details.List(ctx, repository.ByCompany(companyID))
	if err != nil {
		return nil, err
	}
	details := make(map[string]model.CostDetails, len(detailList))
	for _, d := range detailList {
		details[d.ServiceName] = d
	}

	lines := make([]model.PackageSheetLine, 0, len(sel.Packages))
	for _, pkg := range sel.Packages {
		lines = append(lines, model.NewPackageSheetLine(pkg, costs, details))
	}
	return lines, nil
}
