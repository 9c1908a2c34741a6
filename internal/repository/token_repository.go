package repository

import (
	"context"
	"errors"
	"time"

	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TokenRepository stores refresh tokens and blacklisted access tokens.
// Expired documents are reaped by the TTL index on expires_at.
type TokenRepository struct {
	collection *mongo.Collection
	breaker    *circuitbreaker.CircuitBreaker
	now        func() time.Time
}

// NewTokenRepository creates a token repository. cb may be nil.
func NewTokenRepository(db *MongoDB, cb *circuitbreaker.CircuitBreaker) *TokenRepository {
	return &TokenRepository{collection: db.Tokens, breaker: cb, now: time.Now}
}

// Create inserts token, assigning its id and creation time.
func (r *TokenRepository) Create(ctx context.Context, token *model.Token) error {
	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}
	token.CreatedAt = r.now().UTC()

	return guard(ctx, r.breaker, func() error {
		_, err := r.collection.InsertOne(ctx, token)
		return mapWriteError(err)
	})
}

// FindByToken returns the token with the given string, or nil.
func (r *TokenRepository) FindByToken(ctx context.Context, tokenString string) (*model.Token, error) {
	return guardValue(ctx, r.breaker, func() (*model.Token, error) {
		var token model.Token
		err := r.collection.FindOne(ctx, bson.M{"token": tokenString}).Decode(&token)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &token, nil
	})
}

// DeleteByToken removes the token with the given string, if any.
func (r *TokenRepository) DeleteByToken(ctx context.Context, tokenString string) error {
	return guard(ctx, r.breaker, func() error {
		_, err := r.collection.DeleteOne(ctx, bson.M{"token": tokenString})
		return err
	})
}

// DeleteByUserID removes every token of the user with the given type.
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID int64, tokenType string) error {
	return guard(ctx, r.breaker, func() error {
		_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID, "type": tokenType})
		return err
	})
}

// IsBlacklisted reports whether tokenString has an unexpired blacklist entry.
// Entries past their expiry count as gone before the TTL monitor removes them.
func (r *TokenRepository) IsBlacklisted(ctx context.Context, tokenString string) (bool, error) {
	return guardValue(ctx, r.breaker, func() (bool, error) {
		n, err := r.collection.CountDocuments(ctx, bson.M{
			"token":      tokenString,
			"type":       model.TokenTypeBlacklist,
			"expires_at": bson.M{"$gt": r.now()},
		}, options.Count().SetLimit(1))
		if err != nil {
			return false, err
		}
		return n > 0, nil
	})
}

// CleanupExpired removes expired tokens now instead of waiting for the TTL monitor.
func (r *TokenRepository) CleanupExpired(ctx context.Context) error {
	return guard(ctx, r.breaker, func() error {
		_, err := r.collection.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": r.now()}})
		return err
	})
}
