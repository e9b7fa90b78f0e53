package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/viet-college/department-cms/internal/domain"
	"github.com/viet-college/department-cms/internal/repository"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// ContactService handles public contact submissions and staff triage.
type ContactService struct {
	contacts repository.ContactRepository
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Submit records a new contact message with status "new".
func (s *ContactService) Submit(ctx context.Context, contact *domain.Contact) error {
	contact.ID = uuid.NewString()
	contact.Status = domain.ContactStatusNew
	return s.contacts.Create(ctx, contact)
}

// List returns all submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

// UpdateStatus moves a submission through the triage states.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Invalid input", map[string]any{
			"status": "must be one of new, read, responded",
		})
	}
	contact, err := s.contacts.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, notFoundOr(err, "Contact")
	}
	return contact, nil
}
