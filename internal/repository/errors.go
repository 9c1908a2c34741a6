package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey is returned when a write violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

func mapWriteError(err error) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

// IsInfrastructureError reports whether err means the database itself is
// failing. Constraint violations and cancellations are caller problems and
// do not trip circuit breakers.
func IsInfrastructureError(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrDuplicateKey), mongo.IsDuplicateKeyError(err):
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, mongo.ErrNoDocuments):
		return false
	default:
		return true
	}
}
