package app

import (
	"fmt"

	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/http"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
	"github.com/u4rad/camp-service/internal/storage"
)

// ServiceComponents holds the business services behind the API.
type ServiceComponents struct {
	API        http.Services
	Users      *service.UserService
	CopyPrices *service.CRUDService[model.CopyPrice]
}

// InitializeServices builds every repository and service over the database.
// All stores share the store circuit breaker.
func InitializeServices(cfg config.Config, db *DatabaseComponents) (*ServiceComponents, error) {
	files, err := storage.NewLocal(cfg.Storage.MediaRoot)
	if err != nil {
		return nil, fmt.Errorf("initialize media storage: %w", err)
	}

	cb := db.StoreBreaker
	tx := db.Tx

	camps := repository.NewStore[model.Camp](db.DB, repository.CollectionCamps, cb)
	companies := repository.NewCompanyRepository(db.DB, camps, tx, cb)
	selections := repository.NewSelectionRepository(db.DB, cb)
	testData := repository.NewStore[model.TestData](db.DB, repository.CollectionTestData, cb)
	prices := repository.NewStore[model.Service](db.DB, repository.CollectionServices, cb)
	serviceCosts := repository.NewStore[model.ServiceCost](db.DB, repository.CollectionServiceCosts, cb)
	costDetails := repository.NewCostDetailsRepository(db.DB, cb)
	coupons := repository.NewCouponRepository(db.DB, cb)
	userRepo := repository.NewUserRepository(db.DB, cb)

	users := service.NewUserService(userRepo)
	copyPrices := service.NewCRUDService[model.CopyPrice](
		repository.NewStore[model.CopyPrice](db.DB, repository.CollectionCopyPrices, cb))

	api := http.Services{
		Companies:      service.NewCompanyService(companies),
		Camps:          service.NewCampService(camps, companies),
		Selections:     service.NewSelectionService(selections, tx),
		TestData:       service.NewTestDataService(testData, tx),
		Prices:         service.NewCRUDService[model.Service](prices),
		ServiceCosts:   service.NewCRUDService[model.ServiceCost](serviceCosts),
		Costs:          service.NewCostService(costDetails, selections, serviceCosts, tx),
		Summaries:      service.NewSummaryService(repository.NewSummaryRepository(db.DB, cb)),
		CopyPrices:     copyPrices,
		CompanyDetails: service.NewCRUDService[model.CompanyDetails](repository.NewStore[model.CompanyDetails](db.DB, repository.CollectionCompanyDetails, cb)),
		Coupons:        service.NewCouponService(coupons),
		Quotes:         service.NewQuoteService(testData, serviceCosts, prices, coupons),
		Estimations:    service.NewEstimationService(repository.NewStore[model.Estimation](db.DB, repository.CollectionEstimations, cb), files),
		Users:          users,
		Auth:           service.NewAuthService(userRepo, repository.NewTokenRepository(db.DB, cb), cfg.Auth),
	}

	return &ServiceComponents{API: api, Users: users, CopyPrices: copyPrices}, nil
}
