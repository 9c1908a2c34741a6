package service

import (
	"context"
	"fmt"
	"time"

	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages coordinator accounts. Passwords are stored as bcrypt hashes.
type UserService struct {
	repo repository.UserRepositoryInterface
	cost int
}

// NewUserService creates a user service.
func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo, cost: bcrypt.DefaultCost}
}

func (s *UserService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Create hashes the password and stores the account. A taken username
// fails with ErrConflict.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{Username: req.Username, Password: hashed, CompanyName: req.CompanyName}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

// EnsureUser creates the account unless the username exists.
// Reports whether an account was created.
func (s *UserService) EnsureUser(ctx context.Context, username, password, companyName string) (bool, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = s.Create(ctx, &dto.CreateUserRequest{Username: username, Password: password, CompanyName: companyName})
	return err == nil, err
}

// Get returns the account with the id or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx, repository.Query{})
}

// Update changes the company name and, when given, the password.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.CompanyName = req.CompanyName
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, model.FieldError("password", "must be at least 6 characters")
		}
		if user.Password, err = s.hash(req.Password); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Replace(ctx, id, user)
	if err != nil {
		return nil, storeError(err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes the account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
