package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/viet-college/department-cms/internal/auth"
	"github.com/viet-college/department-cms/internal/config"
	"github.com/viet-college/department-cms/internal/domain"
	"github.com/viet-college/department-cms/internal/repository"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// AuthService coordinates credential verification and token issuance.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Login authenticates a username/password pair and mints a token. Unknown
// usernames and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Register creates a new account. Uniqueness is pre-checked for ordering, but
// the unique indexes remain authoritative under concurrent registration.
func (s *AuthService) Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflict("USERNAME_EXISTS", "Username already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("EMAIL_EXISTS", "Email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, apperrors.NewConflict("USERNAME_EXISTS", "Username already exists")
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, apperrors.NewConflict("EMAIL_EXISTS", "Email already exists")
		}
		return nil, err
	}
	return user, nil
}

// Refresh exchanges a signature-valid token, expired or not, for a fresh one.
// The account is re-resolved by the username embedded in the old claims, so a
// deleted account cannot keep refreshing.
func (s *AuthService) Refresh(ctx context.Context, oldToken string) (*domain.User, string, time.Time, error) {
	claims, err := s.tokens.ParseIgnoringExpiry(oldToken)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidToken()
	}

	user, err := s.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUserNotFound()
		}
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
