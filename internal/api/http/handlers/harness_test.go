package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/viet-college/department-cms/internal/api/http"
	"github.com/viet-college/department-cms/internal/api/http/handlers"
	"github.com/viet-college/department-cms/internal/auth"
	"github.com/viet-college/department-cms/internal/cache"
	"github.com/viet-college/department-cms/internal/config"
	"github.com/viet-college/department-cms/internal/domain"
	"github.com/viet-college/department-cms/internal/observability"
	"github.com/viet-college/department-cms/internal/repository"
	"github.com/viet-college/department-cms/internal/service"
)

// In-memory fakes standing in for the Postgres-backed repositories.

type memoryUserRepo struct {
	users map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*domain.User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return repository.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memorySlideRepo struct {
	slides map[string]*domain.HeroSlide
}

func newMemorySlideRepo() *memorySlideRepo {
	return &memorySlideRepo{slides: map[string]*domain.HeroSlide{}}
}

func (r *memorySlideRepo) Create(_ context.Context, slide *domain.HeroSlide) error {
	slide.CreatedAt = time.Now()
	slide.UpdatedAt = slide.CreatedAt
	copied := *slide
	r.slides[slide.ID] = &copied
	return nil
}

func (r *memorySlideRepo) Update(_ context.Context, slide *domain.HeroSlide) error {
	if _, ok := r.slides[slide.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *slide
	r.slides[slide.ID] = &copied
	return nil
}

func (r *memorySlideRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.slides[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.slides, id)
	return nil
}

func (r *memorySlideRepo) GetByID(_ context.Context, id string) (*domain.HeroSlide, error) {
	if slide, ok := r.slides[id]; ok {
		copied := *slide
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memorySlideRepo) List(_ context.Context, published *bool) ([]domain.HeroSlide, error) {
	out := []domain.HeroSlide{}
	for _, slide := range r.slides {
		if published != nil && slide.Published != *published {
			continue
		}
		out = append(out, *slide)
	}
	return out, nil
}

// testHarness wires the real router and middlewares around in-memory storage.
type testHarness struct {
	app     *fiber.App
	users   *memoryUserRepo
	slides  *memorySlideRepo
	authSvc *service.AuthService
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	users := newMemoryUserRepo()
	slides := newMemorySlideRepo()

	authCfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}
	authSvc := service.NewAuthService(authCfg, users)
	contentSvc := service.NewContentService(service.ContentDependencies{
		HeroSlides: slides,
	}, cache.New(nil, time.Minute, zap.NewNop()))

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler("department-cms", "test", nil, nil),
		Auth:       handlers.NewAuthHandler(authSvc),
		HeroSlides: handlers.NewHeroSlidesHandler(contentSvc),
		Faculty:    handlers.NewFacultyHandler(contentSvc),
		News:       handlers.NewNewsHandler(contentSvc),
		Events:     handlers.NewEventsHandler(contentSvc),
		Notes:      handlers.NewNotesHandler(contentSvc),
		Media:      handlers.NewMediaHandler(contentSvc),
		Contacts:   handlers.NewContactsHandler(service.NewContactService(nil)),
		AuthMW:     auth.NewMiddleware(authSvc.TokenManager()),
	})

	return &testHarness{app: app, users: users, slides: slides, authSvc: authSvc}
}

func (h *testHarness) seedUser(t *testing.T, username, password string, role domain.Role) *domain.User {
	t.Helper()

	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.edu",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, h.users.Create(context.Background(), user))
	return user
}

func (h *testHarness) tokenFor(t *testing.T, user *domain.User) string {
	t.Helper()

	token, _, err := h.authSvc.TokenManager().Generate(user)
	require.NoError(t, err)
	return token
}

func (h *testHarness) request(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := h.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded
}

func (h *testHarness) requestList(t *testing.T, path, token string) (int, []any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := h.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []any
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded
}
