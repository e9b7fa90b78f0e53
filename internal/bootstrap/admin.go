package bootstrap

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/viet-college/department-cms/internal/auth"
	"github.com/viet-college/department-cms/internal/config"
	"github.com/viet-college/department-cms/internal/domain"
	"github.com/viet-college/department-cms/internal/repository"
)

// EnsureAdmin is the single idempotent admin bootstrap path, run at startup.
// When ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD are all set it creates the
// account if the username is absent; with ADMIN_FORCE=true an existing account
// gets its password, email and role reset. Re-running with the same
// environment is a no-op.
func EnsureAdmin(ctx context.Context, cfg config.AdminConfig, bcryptCost int, users repository.UserRepository, logger *zap.Logger) error {
	if !cfg.Bootstrappable() {
		logger.Debug("admin bootstrap not configured; skipping")
		return nil
	}

	existing, err := users.GetByUsername(ctx, cfg.Username)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if existing == nil {
		hash, err := auth.HashPassword(cfg.Password, bcryptCost)
		if err != nil {
			return err
		}
		admin := &domain.User{
			ID:           uuid.NewString(),
			Username:     cfg.Username,
			Email:        cfg.Email,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			return err
		}
		logger.Info("admin user created", zap.String("username", cfg.Username))
		return nil
	}

	if !cfg.Force {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Password, bcryptCost)
	if err != nil {
		return err
	}
	existing.Email = cfg.Email
	existing.PasswordHash = hash
	existing.Role = domain.RoleAdmin
	if err := users.Update(ctx, existing); err != nil {
		return err
	}
	logger.Info("admin user reset", zap.String("username", cfg.Username))
	return nil
}
