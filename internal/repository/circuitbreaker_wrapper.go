package repository

import (
	"context"
	"errors"

	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/model"
)

// guard runs fn through cb. A nil breaker runs fn directly.
func guard(ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() error) error {
	if cb == nil {
		return fn()
	}
	return cb.Execute(ctx, fn)
}

// guardValue is guard for calls that produce a value.
func guardValue[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}
	return circuitbreaker.Do(ctx, cb, fn)
}

// NewStoreBreaker creates a breaker for a store that ignores caller mistakes
// such as unique index violations.
func NewStoreBreaker(cfg circuitbreaker.Config) *circuitbreaker.CircuitBreaker {
	cfg.IsFailure = IsInfrastructureError
	return circuitbreaker.New(cfg)
}

// LogsRepositoryWithCircuitBreaker guards a LogsRepository with its own
// breaker. Writes are dropped while the circuit is open; reads fail fast.
type LogsRepositoryWithCircuitBreaker struct {
	repo    *LogsRepository
	breaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo. A nil cb disables guarding.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, breaker: cb}
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Create stores one entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(guard(ctx, r.breaker, func() error {
		return r.repo.Create(ctx, entry)
	}))
}

// CreateMany stores a batch of entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	return dropWhenOpen(guard(ctx, r.breaker, func() error {
		return r.repo.CreateMany(ctx, entries)
	}))
}

// Query returns matching entries, newest first.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	return guardValue(ctx, r.breaker, func() ([]model.LogEntry, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the number of matching entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return guardValue(ctx, r.breaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// CircuitBreaker returns the breaker, possibly nil.
func (r *LogsRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.breaker
}
