package repository

import (
	"context"
	"errors"
	"time"

	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Entity is a document addressed by a sequential integer id.
type Entity interface {
	GetID() int64
	SetID(int64)
}

// EntityPtr constrains P to be *T and to implement Entity.
type EntityPtr[T any] interface {
	*T
	Entity
}

// Query narrows a List call. A zero Query lists everything by ascending id.
type Query struct {
	Filter bson.M
	Sort   bson.D
	Limit  int64
}

// ByCompany filters on company_id when companyID is positive.
func ByCompany(companyID int64) Query {
	if companyID <= 0 {
		return Query{}
	}
	return Query{Filter: bson.M{"company_id": companyID}}
}

// Store is a MongoDB collection of T with relational-style integer ids.
// Every call runs through the circuit breaker when one is attached.
type Store[T any, P EntityPtr[T]] struct {
	collection *mongo.Collection
	sequence   *Sequence
	breaker    *circuitbreaker.CircuitBreaker
	now        func() time.Time
}

// NewStore creates a store over the named collection.
func NewStore[T any, P EntityPtr[T]](db *MongoDB, collection string, cb *circuitbreaker.CircuitBreaker) *Store[T, P] {
	return &Store[T, P]{
		collection: db.Collection(collection),
		sequence:   NewSequence(db),
		breaker:    cb,
		now:        time.Now,
	}
}

// Collection returns the underlying collection.
func (s *Store[T, P]) Collection() *mongo.Collection {
	return s.collection
}

// CircuitBreaker returns the attached breaker, possibly nil.
func (s *Store[T, P]) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.breaker
}

func (s *Store[T, P]) stamp(v *T) {
	if ts, ok := any(P(v)).(model.Timestamped); ok && ts.GetCreatedAt().IsZero() {
		ts.SetCreatedAt(s.now().UTC())
	}
}

// Create assigns the next id to v and inserts it.
func (s *Store[T, P]) Create(ctx context.Context, v *T) error {
	return guard(ctx, s.breaker, func() error {
		id, err := s.sequence.Next(ctx, s.collection.Name())
		if err != nil {
			return err
		}
		P(v).SetID(id)
		s.stamp(v)

		_, err = s.collection.InsertOne(ctx, v)
		return mapWriteError(err)
	})
}

// CreateMany assigns consecutive ids and inserts every value in order.
func (s *Store[T, P]) CreateMany(ctx context.Context, vs []*T) error {
	if len(vs) == 0 {
		return nil
	}
	return guard(ctx, s.breaker, func() error {
		first, err := s.sequence.Reserve(ctx, s.collection.Name(), int64(len(vs)))
		if err != nil {
			return err
		}

		docs := make([]interface{}, len(vs))
		for i, v := range vs {
			P(v).SetID(first + int64(i))
			s.stamp(v)
			docs[i] = v
		}
		_, err = s.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
		return mapWriteError(err)
	})
}

// FindByID returns the document with the id, or nil when there is none.
func (s *Store[T, P]) FindByID(ctx context.Context, id int64) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

// FindOne returns the first document matching filter, or nil when there is none.
func (s *Store[T, P]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	return guardValue(ctx, s.breaker, func() (*T, error) {
		var v T
		err := s.collection.FindOne(ctx, filter).Decode(&v)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}

// List returns the documents matching q. The result is never nil.
func (s *Store[T, P]) List(ctx context.Context, q Query) ([]T, error) {
	return guardValue(ctx, s.breaker, func() ([]T, error) {
		filter := q.Filter
		if filter == nil {
			filter = bson.M{}
		}
		sort := q.Sort
		if len(sort) == 0 {
			sort = bson.D{{Key: "_id", Value: 1}}
		}
		opts := options.Find().SetSort(sort)
		if q.Limit > 0 {
			opts.SetLimit(q.Limit)
		}

		cursor, err := s.collection.Find(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = cursor.Close(ctx)
		}()

		items := make([]T, 0)
		if err := cursor.All(ctx, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
}

// Replace overwrites the document with the id. The creation time of the
// stored document is kept when v does not carry one. Returns nil when no
// document has the id.
func (s *Store[T, P]) Replace(ctx context.Context, id int64, v *T) (*T, error) {
	return guardValue(ctx, s.breaker, func() (*T, error) {
		P(v).SetID(id)

		if ts, ok := any(P(v)).(model.Timestamped); ok && ts.GetCreatedAt().IsZero() {
			var stored struct {
				CreatedAt time.Time `bson:"created_at"`
			}
			err := s.collection.FindOne(ctx, bson.M{"_id": id},
				options.FindOne().SetProjection(bson.M{"created_at": 1})).Decode(&stored)
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			ts.SetCreatedAt(stored.CreatedAt)
		}

		res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, v)
		if err != nil {
			return nil, mapWriteError(err)
		}
		if res.MatchedCount == 0 {
			return nil, nil
		}
		return v, nil
	})
}

// Delete removes the document with the id and reports whether it existed.
func (s *Store[T, P]) Delete(ctx context.Context, id int64) (bool, error) {
	return guardValue(ctx, s.breaker, func() (bool, error) {
		res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return false, err
		}
		return res.DeletedCount > 0, nil
	})
}

// DeleteMany removes every document matching filter and returns how many were removed.
func (s *Store[T, P]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	return guardValue(ctx, s.breaker, func() (int64, error) {
		res, err := s.collection.DeleteMany(ctx, filter)
		if err != nil {
			return 0, err
		}
		return res.DeletedCount, nil
	})
}
