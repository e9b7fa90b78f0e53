package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// NewsHandler exposes news article routes.
type NewsHandler struct {
	content *service.ContentService
}

// NewNewsHandler constructs handler.
func NewNewsHandler(content *service.ContentService) *NewsHandler {
	return &NewsHandler{content: content}
}

// List handles GET /api/news.
func (h *NewsHandler) List(c *fiber.Ctx) error {
	articles, err := h.content.ListNews(c.UserContext(), publishedFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(articles)
}

// Get handles GET /api/news/:id.
func (h *NewsHandler) Get(c *fiber.Ctx) error {
	article, err := h.content.GetNews(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(article)
}

// Create handles POST /api/news (admin).
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req dto.NewsCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	article := req.ToDomain()
	if err := h.content.CreateNews(c.UserContext(), article); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(article)
}

// Update handles PUT /api/news/:id (admin).
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var req dto.NewsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	article, err := h.content.GetNews(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	req.Apply(article)
	if err := h.content.UpdateNews(c.UserContext(), article); err != nil {
		return err
	}
	return c.JSON(article)
}

// Delete handles DELETE /api/news/:id (admin).
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteNews(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "News article deleted successfully"})
}
