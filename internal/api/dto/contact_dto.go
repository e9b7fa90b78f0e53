package dto

import "github.com/viet-college/department-cms/internal/domain"

// ContactCreateRequest is the public contact form payload.
type ContactCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactCreateRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Name == "" {
		details["name"] = "required"
	}
	switch {
	case r.Email == "":
		details["email"] = "required"
	case !emailPattern.MatchString(r.Email):
		details["email"] = "must be a valid email address"
	}
	if r.Message == "" {
		details["message"] = "required"
	}
	return details
}

func (r ContactCreateRequest) ToDomain() *domain.Contact {
	return &domain.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// ContactStatusRequest updates the triage state of a submission.
type ContactStatusRequest struct {
	Status domain.ContactStatus `json:"status"`
}
