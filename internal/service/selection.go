package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
)

// SelectionService manages the package selection of each company.
type SelectionService struct {
	repo repository.SelectionRepositoryInterface
	tx   repository.Transactor
}

// NewSelectionService creates a selection service.
func NewSelectionService(repo repository.SelectionRepositoryInterface, tx repository.Transactor) *SelectionService {
	return &SelectionService{repo: repo, tx: tx}
}

// Replace makes sel.Packages the only selection of sel.CompanyID.
func (s *SelectionService) Replace(ctx context.Context, sel *model.ServiceSelection) (*model.ServiceSelection, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	var saved *model.ServiceSelection
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repo.ReplaceForCompany(ctx, sel.CompanyID, sel.Packages)
		return err
	})
	metrics.RecordOperation(metrics.OpSelectionReplace, err)
	if err != nil {
		return nil, storeError(err)
	}

	log.Debug().
		Int64("company_id", sel.CompanyID).
		Int("packages", len(sel.Packages)).
		Msg("service selection replaced")
	return saved, nil
}

// ReplaceByID replaces the selection addressed by id. The company of the
// stored selection wins over a company_id in sel.
func (s *SelectionService) ReplaceByID(ctx context.Context, id int64, sel *model.ServiceSelection) (*model.ServiceSelection, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sel.CompanyID = existing.CompanyID
	return s.Replace(ctx, sel)
}

// Get returns the selection with the id or ErrNotFound.
func (s *SelectionService) Get(ctx context.Context, id int64) (*model.ServiceSelection, error) {
	sel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, ErrNotFound
	}
	return sel, nil
}

// List returns the selection of the company, or every selection when
// companyID is zero.
func (s *SelectionService) List(ctx context.Context, companyID int64) ([]model.ServiceSelection, error) {
	return s.repo.List(ctx, repository.ByCompany(companyID))
}

// Delete removes the selection with the id.
func (s *SelectionService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
