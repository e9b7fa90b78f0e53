package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// HeroSlidesHandler exposes hero slide routes.
type HeroSlidesHandler struct {
	content *service.ContentService
}

// NewHeroSlidesHandler constructs handler.
func NewHeroSlidesHandler(content *service.ContentService) *HeroSlidesHandler {
	return &HeroSlidesHandler{content: content}
}

// List handles GET /api/hero-slides.
func (h *HeroSlidesHandler) List(c *fiber.Ctx) error {
	slides, err := h.content.ListHeroSlides(c.UserContext(), publishedFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(slides)
}

// Create handles POST /api/hero-slides (admin).
func (h *HeroSlidesHandler) Create(c *fiber.Ctx) error {
	var req dto.HeroSlideCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	slide := req.ToDomain()
	if err := h.content.CreateHeroSlide(c.UserContext(), slide); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(slide)
}

// Update handles PUT /api/hero-slides/:id (admin).
func (h *HeroSlidesHandler) Update(c *fiber.Ctx) error {
	var req dto.HeroSlideUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	slide, err := h.content.GetHeroSlide(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	req.Apply(slide)
	if err := h.content.UpdateHeroSlide(c.UserContext(), slide); err != nil {
		return err
	}
	return c.JSON(slide)
}

// Delete handles DELETE /api/hero-slides/:id (admin).
func (h *HeroSlidesHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteHeroSlide(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Hero slide deleted successfully"})
}
