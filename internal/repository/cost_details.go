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

// CostDetailsRepository stores cost buckets, unique per (company_id, service_name).
type CostDetailsRepository struct {
	*Store[model.CostDetails, *model.CostDetails]
}

// NewCostDetailsRepository creates a cost details repository.
func NewCostDetailsRepository(db *MongoDB, cb *circuitbreaker.CircuitBreaker) *CostDetailsRepository {
	return &CostDetailsRepository{
		Store: NewStore[model.CostDetails](db, CollectionCostDetails, cb),
	}
}

// UpsertMany writes all rows with one ordered bulk write.
func (r *CostDetailsRepository) UpsertMany(ctx context.Context, rows []model.CostDetails) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := r.bulkUpsert(ctx, rows)
	if errors.Is(err, ErrDuplicateKey) {
		// A concurrent call inserted one of the keys first; every write is
		// a full overwrite, so replaying the batch is safe.
		n, err = r.bulkUpsert(ctx, rows)
	}
	return n, err
}

func (r *CostDetailsRepository) bulkUpsert(ctx context.Context, rows []model.CostDetails) (int, error) {
	return guardValue(ctx, r.breaker, func() (int, error) {
		first, err := r.sequence.Reserve(ctx, CollectionCostDetails, int64(len(rows)))
		if err != nil {
			return 0, err
		}

		writes := make([]mongo.WriteModel, 0, len(rows))
		for i, row := range rows {
			filter := bson.M{"company_id": row.CompanyID, "service_name": row.ServiceName}
			update := bson.M{
				"$set": bson.M{
					"travel":      row.Travel,
					"stay":        row.Stay,
					"food":        row.Food,
					"salary":      row.Salary,
					"misc":        row.Misc,
					"equipment":   row.Equipment,
					"consumables": row.Consumables,
					"reporting":   row.Reporting,
				},
				"$setOnInsert": bson.M{"_id": first + int64(i)},
			}
			writes = append(writes, mongo.NewUpdateOneModel().
				SetFilter(filter).
				SetUpdate(update).
				SetUpsert(true))
		}

		res, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
		if err != nil {
			return 0, mapWriteError(err)
		}
		return int(res.MatchedCount + res.UpsertedCount), nil
	})
}
