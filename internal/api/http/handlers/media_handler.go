package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// MediaHandler exposes gallery routes.
type MediaHandler struct {
	content *service.ContentService
}

// NewMediaHandler constructs handler.
func NewMediaHandler(content *service.ContentService) *MediaHandler {
	return &MediaHandler{content: content}
}

// List handles GET /api/media. ?category= takes precedence over ?published=.
func (h *MediaHandler) List(c *fiber.Ctx) error {
	items, err := h.content.ListMedia(c.UserContext(), publishedFilter(c), c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create handles POST /api/media (admin).
func (h *MediaHandler) Create(c *fiber.Ctx) error {
	var req dto.MediaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	item := req.ToDomain()
	if err := h.content.CreateMedia(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(item)
}

// Update handles PUT /api/media/:id (admin).
func (h *MediaHandler) Update(c *fiber.Ctx) error {
	var req dto.MediaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	item, err := h.content.GetMedia(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	req.Apply(item)
	if err := h.content.UpdateMedia(c.UserContext(), item); err != nil {
		return err
	}
	return c.JSON(item)
}

// Delete handles DELETE /api/media/:id (admin).
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteMedia(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Media deleted successfully"})
}
