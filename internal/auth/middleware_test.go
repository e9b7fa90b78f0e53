package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/viet-college/department-cms/internal/api/http"
	"github.com/viet-college/department-cms/internal/auth"
	"github.com/viet-college/department-cms/internal/domain"
	"github.com/viet-college/department-cms/internal/observability"
)

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func newGateApp(t *testing.T, tm *auth.TokenManager) *fiber.App {
	t.Helper()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)

	mw := auth.NewMiddleware(tm)
	app.Get("/protected", mw.Authenticate, func(c *fiber.Ctx) error {
		claims, ok := auth.ClaimsFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"username": claims.Username})
	})
	app.Get("/admin-only", mw.Authenticate, mw.RequireAdmin, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) (int, errorBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body errorBody
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestAuthenticateMissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	app := newGateApp(t, tm)

	status, body := doGet(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
	assert.Equal(t, "Access token required", body.Message)
}

func TestAuthenticateBadHeaderShape(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	app := newGateApp(t, tm)

	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		status, body := doGet(t, app, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, status, "header %q", header)
		assert.Equal(t, "MISSING_TOKEN", body.Code, "header %q", header)
	}
}

func TestAuthenticateMalformedToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	app := newGateApp(t, tm)

	status, body := doGet(t, app, "/protected", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
	assert.Equal(t, "Invalid token format", body.Message)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Hour)
	token, _, err := tm.Generate(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser})
	require.NoError(t, err)

	app := newGateApp(t, tm)
	status, body := doGet(t, app, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "TOKEN_EXPIRED", body.Code)
}

func TestAuthenticateTamperedToken(t *testing.T) {
	other := auth.NewTokenManager("another-secret", time.Hour)
	token, _, err := other.Generate(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser})
	require.NoError(t, err)

	tm := auth.NewTokenManager("test-secret", time.Hour)
	app := newGateApp(t, tm)
	status, body := doGet(t, app, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "TOKEN_INVALID", body.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Generate(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser})
	require.NoError(t, err)

	app := newGateApp(t, tm)
	status, _ := doGet(t, app, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Generate(&domain.User{ID: "u1", Username: "bob", Role: domain.RoleUser})
	require.NoError(t, err)

	app := newGateApp(t, tm)
	status, body := doGet(t, app, "/admin-only", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "ADMIN_REQUIRED", body.Code)
	assert.Equal(t, "Admin access required", body.Message)
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Generate(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin})
	require.NoError(t, err)

	app := newGateApp(t, tm)
	status, _ := doGet(t, app, "/admin-only", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
}

func TestBearerPrefixIsCaseInsensitive(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Generate(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser})
	require.NoError(t, err)

	app := newGateApp(t, tm)
	status, _ := doGet(t, app, "/protected", "bearer "+token)
	assert.Equal(t, http.StatusOK, status)
}
