package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viet-college/department-cms/internal/domain"
)

func TestHeroSlidesListIsPublic(t *testing.T) {
	h := newTestHarness(t)

	status, slides := h.requestList(t, "/api/hero-slides", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, slides)
}

func TestHeroSlidesCreateRequiresToken(t *testing.T) {
	h := newTestHarness(t)

	status, body := h.request(t, http.MethodPost, "/api/hero-slides", "", map[string]any{
		"title": "Welcome Week",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestHeroSlidesCreateRequiresAdmin(t *testing.T) {
	h := newTestHarness(t)
	user := h.seedUser(t, "bob", "correct-horse", domain.RoleUser)

	status, body := h.request(t, http.MethodPost, "/api/hero-slides", h.tokenFor(t, user), map[string]any{
		"title": "Welcome Week",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "ADMIN_REQUIRED", body["code"])
	assert.Equal(t, "Admin access required", body["message"])
}

func TestHeroSlidesAdminCRUD(t *testing.T) {
	h := newTestHarness(t)
	admin := h.seedUser(t, "alice", "correct-horse", domain.RoleAdmin)
	token := h.tokenFor(t, admin)

	// Create applies presentation defaults for omitted fields.
	status, created := h.request(t, http.MethodPost, "/api/hero-slides", token, map[string]any{
		"title": "Welcome Week",
	})
	require.Equal(t, http.StatusCreated, status)
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	assert.Equal(t, "/default-hero-bg.jpg", created["backgroundImage"])
	assert.Equal(t, "Learn More", created["ctaText"])
	assert.Equal(t, "#", created["ctaLink"])
	assert.Equal(t, true, created["published"])

	// The new slide shows up on the public list.
	status, slides := h.requestList(t, "/api/hero-slides", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, slides, 1)

	// Partial update leaves untouched fields alone.
	status, updated := h.request(t, http.MethodPut, "/api/hero-slides/"+id, token, map[string]any{
		"subtitle": "Fall 2026",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Welcome Week", updated["title"])
	assert.Equal(t, "Fall 2026", updated["subtitle"])

	// Delete removes it.
	status, body := h.request(t, http.MethodDelete, "/api/hero-slides/"+id, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hero slide deleted successfully", body["message"])

	status, slides = h.requestList(t, "/api/hero-slides", "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, slides)
}

func TestHeroSlidesUpdateMissingSlide(t *testing.T) {
	h := newTestHarness(t)
	admin := h.seedUser(t, "alice", "correct-horse", domain.RoleAdmin)

	status, body := h.request(t, http.MethodPut, "/api/hero-slides/nope", h.tokenFor(t, admin), map[string]any{
		"title": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Hero slide not found", body["message"])
}

func TestHeroSlidesCreateValidation(t *testing.T) {
	h := newTestHarness(t)
	admin := h.seedUser(t, "alice", "correct-horse", domain.RoleAdmin)

	status, body := h.request(t, http.MethodPost, "/api/hero-slides", h.tokenFor(t, admin), map[string]any{
		"subtitle": "no title",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestHeroSlidesPublishedFilter(t *testing.T) {
	h := newTestHarness(t)
	admin := h.seedUser(t, "alice", "correct-horse", domain.RoleAdmin)
	token := h.tokenFor(t, admin)

	_, _ = h.request(t, http.MethodPost, "/api/hero-slides", token, map[string]any{
		"title":     "Visible",
		"published": true,
	})
	_, _ = h.request(t, http.MethodPost, "/api/hero-slides", token, map[string]any{
		"title":     "Draft",
		"published": false,
	})

	status, slides := h.requestList(t, "/api/hero-slides?published=true", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, slides, 1)
	slide, ok := slides[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Visible", slide["title"])
}
