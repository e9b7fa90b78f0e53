package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// FacultyHandler exposes faculty profile routes.
type FacultyHandler struct {
	content *service.ContentService
}

// NewFacultyHandler constructs handler.
func NewFacultyHandler(content *service.ContentService) *FacultyHandler {
	return &FacultyHandler{content: content}
}

// List handles GET /api/faculty.
func (h *FacultyHandler) List(c *fiber.Ctx) error {
	members, err := h.content.ListFaculty(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(members)
}

// Create handles POST /api/faculty (admin).
func (h *FacultyHandler) Create(c *fiber.Ctx) error {
	var req dto.FacultyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	member := req.ToDomain()
	if err := h.content.CreateFaculty(c.UserContext(), member); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(member)
}

// Update handles PUT /api/faculty/:id (admin).
func (h *FacultyHandler) Update(c *fiber.Ctx) error {
	var req dto.FacultyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	member, err := h.content.GetFaculty(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	req.Apply(member)
	if err := h.content.UpdateFaculty(c.UserContext(), member); err != nil {
		return err
	}
	return c.JSON(member)
}

// Delete handles DELETE /api/faculty/:id (admin).
func (h *FacultyHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteFaculty(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Faculty member deleted successfully"})
}
