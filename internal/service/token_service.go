package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/repository"
)

const (
	// TokenIssuer is the iss claim of every token the service signs.
	TokenIssuer = "camp-service"

	audienceAccess  = "access"
	audienceRefresh = "refresh"
)

// TokenService issues, validates and revokes JWTs.
type TokenService interface {
	// GenerateTokenPair signs an access and a refresh token and stores the refresh token.
	GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error)
	// ValidateAccessToken returns the claims of a signed, unexpired, non-blacklisted access token.
	ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	// ValidateRefreshToken checks the signature and expiry of a refresh token.
	ValidateRefreshToken(tokenString string) (*dto.Claims, error)
	// InvalidateAccessToken blacklists an access token until it expires.
	InvalidateAccessToken(ctx context.Context, tokenString string) error
	// InvalidateUserTokens removes all refresh tokens of a user.
	InvalidateUserTokens(ctx context.Context, userID int64) error
	// DeleteRefreshToken removes one refresh token.
	DeleteRefreshToken(ctx context.Context, tokenString string) error
	// FindRefreshToken returns the stored refresh token, or nil.
	FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error)
}

// TokenConfig holds the keys and lifetimes of issued tokens.
type TokenConfig struct {
	SecretKey        string
	RefreshSecretKey string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:        authConfig.JWTSecretKey,
		RefreshSecretKey: authConfig.JWTRefreshSecret,
		AccessTokenTTL:   authConfig.AccessTokenTTL,
		RefreshTokenTTL:  authConfig.RefreshTokenTTL,
	}
}

// signer signs and parses one kind of token. The audience keeps access and
// refresh tokens apart even when both share a key.
type signer struct {
	key      []byte
	ttl      time.Duration
	audience string
	now      func() time.Time
}

func (s signer) sign(user *model.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{UserID: user.ID, Username: user.Username},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    TokenIssuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	return signed, expiresAt, err
}

// parse verifies tokenString. Any failure is ErrInvalidToken.
func (s signer) parse(tokenString string) (*ClaimsWithJWT, error) {
	claims := &ClaimsWithJWT{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type tokenService struct {
	access  signer
	refresh signer
	repo    repository.TokenRepositoryInterface
}

// NewTokenService creates a token service storing refresh tokens and the
// blacklist in tokenRepo.
func NewTokenService(tokenRepo repository.TokenRepositoryInterface, cfg TokenConfig) TokenService {
	return &tokenService{
		access:  signer{key: []byte(cfg.SecretKey), ttl: cfg.AccessTokenTTL, audience: audienceAccess, now: time.Now},
		refresh: signer{key: []byte(cfg.RefreshSecretKey), ttl: cfg.RefreshTokenTTL, audience: audienceRefresh, now: time.Now},
		repo:    tokenRepo,
	}
}

func (s *tokenService) GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	if user.ID <= 0 {
		return nil, errors.New("user has no id, cannot create token")
	}

	accessToken, _, err := s.access.sign(user)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.refresh.sign(user)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	stored := &model.Token{
		UserID:    user.ID,
		Token:     refreshToken,
		Type:      model.TokenTypeRefresh,
		ExpiresAt: refreshExpiresAt,
	}
	if err := s.repo.Create(ctx, stored); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.access.ttl.Seconds()),
	}, nil
}

func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	blacklisted, err := s.repo.IsBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}

	claims, err := s.access.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return &claims.Claims, nil
}

func (s *tokenService) ValidateRefreshToken(tokenString string) (*dto.Claims, error) {
	claims, err := s.refresh.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return &claims.Claims, nil
}

func (s *tokenService) InvalidateAccessToken(ctx context.Context, tokenString string) error {
	claims, err := s.access.parse(tokenString)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, &model.Token{
		UserID:    claims.UserID,
		Token:     tokenString,
		Type:      model.TokenTypeBlacklist,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}

func (s *tokenService) InvalidateUserTokens(ctx context.Context, userID int64) error {
	return s.repo.DeleteByUserID(ctx, userID, model.TokenTypeRefresh)
}

func (s *tokenService) DeleteRefreshToken(ctx context.Context, tokenString string) error {
	return s.repo.DeleteByToken(ctx, tokenString)
}

func (s *tokenService) FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error) {
	return s.repo.FindByToken(ctx, tokenString)
}
