package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// EventsHandler exposes event routes.
type EventsHandler struct {
	content *service.ContentService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(content *service.ContentService) *EventsHandler {
	return &EventsHandler{content: content}
}

// List handles GET /api/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.content.ListEvents(c.UserContext(), publishedFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(events)
}

// Get handles GET /api/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.content.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(event)
}

// Create handles POST /api/events (admin).
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	event := req.ToDomain()
	if err := h.content.CreateEvent(c.UserContext(), event); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(event)
}

// Update handles PUT /api/events/:id (admin).
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	event, err := h.content.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	req.Apply(event)
	if err := h.content.UpdateEvent(c.UserContext(), event); err != nil {
		return err
	}
	return c.JSON(event)
}

// Delete handles DELETE /api/events/:id (admin).
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteEvent(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Event deleted successfully"})
}
