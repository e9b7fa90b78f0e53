package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// NotesHandler exposes study note routes.
type NotesHandler struct {
	content *service.ContentService
}

// NewNotesHandler constructs handler.
func NewNotesHandler(content *service.ContentService) *NotesHandler {
	return &NotesHandler{content: content}
}

// List handles GET /api/notes. ?semester= takes precedence over ?published=.
func (h *NotesHandler) List(c *fiber.Ctx) error {
	notes, err := h.content.ListNotes(c.UserContext(), publishedFilter(c), c.Query("semester"))
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

// Create handles POST /api/notes (admin).
func (h *NotesHandler) Create(c *fiber.Ctx) error {
	var req dto.NoteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	note := req.ToDomain()
	if err := h.content.CreateNote(c.UserContext(), note); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(note)
}

// Update handles PUT /api/notes/:id (admin).
func (h *NotesHandler) Update(c *fiber.Ctx) error {
	var req dto.NoteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	note, err := h.content.GetNote(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	req.Apply(note)
	if err := h.content.UpdateNote(c.UserContext(), note); err != nil {
		return err
	}
	return c.JSON(note)
}

// Delete handles DELETE /api/notes/:id (admin).
func (h *NotesHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteNote(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
