package service

import (
	"context"

	"github.com/u4rad/camp-service/internal/repository"
)

type validator interface {
	Validate() error
}

// CRUDService is the create/read/replace/delete surface of one resource.
// Values implementing Validate() are validated before every write.
type CRUDService[T any] struct {
	repo    repository.Repository[T]
	prepare func(ctx context.Context, v *T) error
}

// NewCRUDService creates a CRUD service over repo.
func NewCRUDService[T any](repo repository.Repository[T]) *CRUDService[T] {
	return &CRUDService[T]{repo: repo}
}

// WithPrepare sets a hook run after validation on every write, for derived
// fields or reference checks.
func (s *CRUDService[T]) WithPrepare(fn func(ctx context.Context, v *T) error) *CRUDService[T] {
	s.prepare = fn
	return s
}

func (s *CRUDService[T]) check(ctx context.Context, v *T) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if val, ok := any(v).(validator); ok {
		if err := val.Validate(); err != nil {
			return err
		}
	}
	if s.prepare != nil {
		return s.prepare(ctx, v)
	}
	return nil
}

// Create validates v and stores it with a new id.
func (s *CRUDService[T]) Create(ctx context.Context, v *T) error {
	if err := s.check(ctx, v); err != nil {
		return err
	}
	return storeError(s.repo.Create(ctx, v))
}

// Get returns the record with the id or ErrNotFound.
func (s *CRUDService[T]) Get(ctx context.Context, id int64) (*T, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// List returns the records matching q.
func (s *CRUDService[T]) List(ctx context.Context, q repository.Query) ([]T, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, q)
}

// Update validates v and replaces the record with the id.
func (s *CRUDService[T]) Update(ctx context.Context, id int64, v *T) (*T, error) {
	if err := s.check(ctx, v); err != nil {
		return nil, err
	}
	updated, err := s.repo.Replace(ctx, id, v)
	if err != nil {
		return nil, storeError(err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the record with the id or returns ErrNotFound.
func (s *CRUDService[T]) Delete(ctx context.Context, id int64) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ResourceService is implemented by every service exposed through the
// generic resource handler.
type ResourceService[T any] interface {
	Create(ctx context.Context, v *T) error
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, q repository.Query) ([]T, error)
	Update(ctx context.Context, id int64, v *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

var _ ResourceService[struct{}] = (*CRUDService[struct{}])(nil)
