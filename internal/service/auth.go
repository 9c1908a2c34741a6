package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
)

// ClaimsWithJWT is the JWT payload: the service claims plus the registered ones.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService logs back-office users in and out.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	InvalidateUserTokens(ctx context.Context, userID int64) error
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

type authService struct {
	userRepo     repository.UserRepositoryInterface
	tokenService TokenService
}

// dummyHash is compared against when the username is unknown, so a miss
// costs as much as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("camp-service"), bcrypt.DefaultCost)

// NewAuthService creates an authentication service signing with the keys of authConfig.
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	tokenRepo repository.TokenRepositoryInterface,
	authConfig config.AuthConfig,
) AuthService {
	tokenService := NewTokenService(tokenRepo, NewTokenConfigFromAuthConfig(authConfig))
	return NewAuthServiceWithTokenService(userRepo, tokenService)
}

// NewAuthServiceWithTokenService creates an authentication service over tokenService.
func NewAuthServiceWithTokenService(userRepo repository.UserRepositoryInterface, tokenService TokenService) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login checks the credentials and issues a token pair. Earlier refresh
// tokens of the user are revoked.
func (s *authService) Login(ctx context.Context, username, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("find user %q: %w", username, err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := s.tokenService.InvalidateUserTokens(ctx, user.ID); err != nil {
		return nil, nil, fmt.Errorf("revoke refresh tokens: %w", err)
	}
	pair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// RefreshToken trades a stored refresh token for a new pair. The old token
// is deleted, so each refresh token works once.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Type != model.TokenTypeRefresh || time.Now().After(token.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("delete used refresh token: %w", err)
	}

	return s.tokenService.GenerateTokenPair(ctx, user)
}

// ValidateToken returns the claims of a valid, non-blacklisted access token.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	return s.tokenService.ValidateAccessToken(ctx, tokenString)
}

// InvalidateUserTokens removes every refresh token of the user.
func (s *authService) InvalidateUserTokens(ctx context.Context, userID int64) error {
	return s.tokenService.InvalidateUserTokens(ctx, userID)
}

// Logout blacklists the access token and deletes the refresh token.
// Both are attempted; the errors are joined.
func (s *authService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	var errs []error

	if accessToken != "" {
		if err := s.tokenService.InvalidateAccessToken(ctx, accessToken); err != nil {
			log.Warn().Err(err).Msg("Logout: access token not blacklisted")
			errs = append(errs, fmt.Errorf("invalidate access token: %w", err))
		}
	}

	if refreshToken != "" {
		if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
			log.Warn().Err(err).Msg("Logout: refresh token not deleted")
			errs = append(errs, fmt.Errorf("delete refresh token: %w", err))
		}
	}

	return errors.Join(errs...)
}
