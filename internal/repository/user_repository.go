package repository

import (
	"context"

	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository stores coordinator accounts; username is unique.
type UserRepository struct {
	*Store[model.User, *model.User]
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *MongoDB, cb *circuitbreaker.CircuitBreaker) *UserRepository {
	return &UserRepository{Store: NewStore[model.User](db, CollectionUsers, cb)}
}

// FindByUsername finds a user by username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.FindOne(ctx, bson.M{"username": username})
}
