package repository

import (
	"context"

	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
)

// CompanyRepository stores companies and owns the cascade to their camps.
type CompanyRepository struct {
	*Store[model.Company, *model.Company]
	camps *Store[model.Camp, *model.Camp]
	tx    Transactor
}

// NewCompanyRepository creates a company repository over the given camp store.
func NewCompanyRepository(db *MongoDB, camps *Store[model.Camp, *model.Camp], tx Transactor, cb *circuitbreaker.CircuitBreaker) *CompanyRepository {
	return &CompanyRepository{
		Store: NewStore[model.Company](db, CollectionCompanies, cb),
		camps: camps,
		tx:    tx,
	}
}

// DeleteCascade removes the company and its camps in one transaction.
func (r *CompanyRepository) DeleteCascade(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.camps.DeleteMany(ctx, bson.M{"company_id": id}); err != nil {
			return err
		}
		var err error
		deleted, err = r.Store.Delete(ctx, id)
		return err
	})
	return deleted, err
}

// Delete is DeleteCascade; a company is never removed without its camps.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.DeleteCascade(ctx, id)
}

// AttachCamps loads the camps of every company with one query.
func (r *CompanyRepository) AttachCamps(ctx context.Context, companies []model.Company) error {
	if len(companies) == 0 {
		return nil
	}

	ids := make([]int64, len(companies))
	for i := range companies {
		ids[i] = companies[i].ID
	}

	camps, err := r.camps.List(ctx, Query{
		Filter: bson.M{"company_id": bson.M{"$in": ids}},
		Sort:   bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return err
	}

	byCompany := make(map[int64][]model.Camp, len(companies))
	for _, camp := range camps {
		byCompany[camp.CompanyID] = append(byCompany[camp.CompanyID], camp)
	}
	for i := range companies {
		companies[i].Camps = byCompany[companies[i].ID]
		if companies[i].Camps == nil {
			companies[i].Camps = []model.Camp{}
		}
	}
	return nil
}
