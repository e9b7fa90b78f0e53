package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// ContactsHandler exposes contact form routes. Submission is public;
// listing and triage require admin.
type ContactsHandler struct {
	contacts *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contacts *service.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

// Create handles POST /api/contacts (public).
func (h *ContactsHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	contact := req.ToDomain()
	if err := h.contacts.Submit(c.UserContext(), contact); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Message sent successfully",
		"contact": contact,
	})
}

// List handles GET /api/contacts (admin).
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contacts.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(contacts)
}

// UpdateStatus handles PUT /api/contacts/:id/status (admin).
func (h *ContactsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.ContactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	contact, err := h.contacts.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(contact)
}
