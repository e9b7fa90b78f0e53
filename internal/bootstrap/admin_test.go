package bootstrap

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/viet-college/department-cms/internal/auth"
	"github.com/viet-college/department-cms/internal/config"
	"github.com/viet-college/department-cms/internal/domain"
)

type fakeUserRepo struct {
	byUsername map[string]*domain.User
	creates    int
	updates    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.creates++
	copied := *user
	r.byUsername[user.Username] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.updates++
	copied := *user
	r.byUsername[user.Username] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if user, ok := r.byUsername[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func adminConfig(force bool) config.AdminConfig {
	return config.AdminConfig{
		Username: "admin",
		Email:    "admin@example.edu",
		Password: "bootstrap-secret",
		Force:    force,
	}
}

func TestEnsureAdminCreatesMissingAccount(t *testing.T) {
	repo := newFakeUserRepo()

	err := EnsureAdmin(context.Background(), adminConfig(false), bcrypt.MinCost, repo, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 1, repo.creates)

	admin, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, "admin@example.edu", admin.Email)
	assert.NoError(t, auth.ComparePassword(admin.PasswordHash, "bootstrap-secret"))
}

func TestEnsureAdminSecondRunIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()

	require.NoError(t, EnsureAdmin(context.Background(), adminConfig(false), bcrypt.MinCost, repo, zap.NewNop()))
	require.NoError(t, EnsureAdmin(context.Background(), adminConfig(false), bcrypt.MinCost, repo, zap.NewNop()))

	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 0, repo.updates)
}

func TestEnsureAdminForceResetsExisting(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := auth.HashPassword("old-password", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &domain.User{
		ID:           "existing",
		Username:     "admin",
		Email:        "stale@example.edu",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}))

	err = EnsureAdmin(context.Background(), adminConfig(true), bcrypt.MinCost, repo, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 1, repo.updates)

	admin, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, "admin@example.edu", admin.Email)
	assert.NoError(t, auth.ComparePassword(admin.PasswordHash, "bootstrap-secret"))
}

func TestEnsureAdminSkipsWhenUnconfigured(t *testing.T) {
	repo := newFakeUserRepo()

	err := EnsureAdmin(context.Background(), config.AdminConfig{}, bcrypt.MinCost, repo, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, repo.creates)
}
