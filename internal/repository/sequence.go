package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence allocates increasing integer ids from the counters collection.
// Ids are never reused; an aborted write leaves a gap.
type Sequence struct {
	counters *mongo.Collection
}

// NewSequence creates a sequence allocator.
func NewSequence(db *MongoDB) *Sequence {
	return &Sequence{counters: db.Counters}
}

type counterDocument struct {
	Name  string `bson:"_id"`
	Value int64  `bson:"seq"`
}

// Next returns the next value of the named counter, starting at 1.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	return s.Reserve(ctx, name, 1)
}

// Reserve allocates n consecutive values and returns the first one.
func (s *Sequence) Reserve(ctx context.Context, name string, n int64) (int64, error) {
	if n <= 0 {
		return 0, errors.New("sequence: reserve count must be positive")
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDocument
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": n}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value - n + 1, nil
}
