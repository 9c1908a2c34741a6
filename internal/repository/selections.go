package repository

import (
	"context"
	"errors"

	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SelectionRepository stores the package selection of each company.
// company_id carries a unique index.
type SelectionRepository struct {
	*Store[model.ServiceSelection, *model.ServiceSelection]
}

// NewSelectionRepository creates a selection repository.
func NewSelectionRepository(db *MongoDB, cb *circuitbreaker.CircuitBreaker) *SelectionRepository {
	return &SelectionRepository{
		Store: NewStore[model.ServiceSelection](db, CollectionSelections, cb),
	}
}

// FindByCompany returns the selection of the company, or nil.
func (r *SelectionRepository) FindByCompany(ctx context.Context, companyID int64) (*model.ServiceSelection, error) {
	return r.FindOne(ctx, bson.M{"company_id": companyID})
}

// ReplaceForCompany upserts the selection keyed by company_id in a single
// write, so a company never has more than one selection. A new selection id
// is allocated only when the company has none yet.
func (r *SelectionRepository) ReplaceForCompany(ctx context.Context, companyID int64, packages []model.Package) (*model.ServiceSelection, error) {
	sel, err := r.upsert(ctx, companyID, packages)
	if errors.Is(err, ErrDuplicateKey) {
		// Lost an insert race on the unique index; the row exists now.
		sel, err = r.upsert(ctx, companyID, packages)
	}
	return sel, err
}

func (r *SelectionRepository) upsert(ctx context.Context, companyID int64, packages []model.Package) (*model.ServiceSelection, error) {
	return guardValue(ctx, r.breaker, func() (*model.ServiceSelection, error) {
		id, err := r.selectionID(ctx, companyID)
		if err != nil {
			return nil, err
		}

		now := r.now().UTC()
		update := bson.M{
			"$set": bson.M{
				"packages":   packages,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"_id":        id,
				"created_at": now,
			},
		}
		opts := options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After)

		var sel model.ServiceSelection
		err = r.collection.FindOneAndUpdate(ctx, bson.M{"company_id": companyID}, update, opts).Decode(&sel)
		if err != nil {
			return nil, mapWriteError(err)
		}
		return &sel, nil
	})
}

// selectionID returns the id of the company's stored selection, or the next
// sequence value when there is none.
func (r *SelectionRepository) selectionID(ctx context.Context, companyID int64) (int64, error) {
	var stored struct {
		ID int64 `bson:"_id"`
	}
	err := r.collection.FindOne(ctx, bson.M{"company_id": companyID},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return r.sequence.Next(ctx, CollectionSelections)
	}
	if err != nil {
		return 0, err
	}
	return stored.ID, nil
}
