package service

import (
	"context"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
)

// CompanyService manages companies. Reads embed the camps of each company
// and deletes cascade to them.
type CompanyService struct {
	*CRUDService[model.Company]
	repo repository.CompanyRepositoryInterface
}

// NewCompanyService creates a company service.
func NewCompanyService(repo repository.CompanyRepositoryInterface) *CompanyService {
	return &CompanyService{
		CRUDService: NewCRUDService[model.Company](repo),
		repo:        repo,
	}
}

// Get returns the company with its camps.
func (s *CompanyService) Get(ctx context.Context, id int64) (*model.Company, error) {
	company, err := s.CRUDService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	one := []model.Company{*company}
	if err := s.repo.AttachCamps(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// List returns the companies matching q with their camps.
func (s *CompanyService) List(ctx context.Context, q repository.Query) ([]model.Company, error) {
	companies, err := s.CRUDService.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AttachCamps(ctx, companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Update replaces the company and returns it with its camps.
func (s *CompanyService) Update(ctx context.Context, id int64, c *model.Company) (*model.Company, error) {
	if _, err := s.CRUDService.Update(ctx, id, c); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// NewCampService creates the camp service. A camp must reference an
// existing company.
func NewCampService(camps repository.Repository[model.Camp], companies repository.Repository[model.Company]) *CRUDService[model.Camp] {
	return NewCRUDService(camps).WithPrepare(func(ctx context.Context, camp *model.Camp) error {
		company, err := companies.FindByID(ctx, camp.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return model.FieldError("company", "company does not exist")
		}
		return nil
	})
}
