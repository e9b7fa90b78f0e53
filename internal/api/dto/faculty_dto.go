package dto

import "github.com/viet-college/department-cms/internal/domain"

// FacultyCreateRequest is the admin payload for a new faculty profile.
type FacultyCreateRequest struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ImageURL       string `json:"imageUrl"`
	Order          int    `json:"order"`
}

func (r FacultyCreateRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Name == "" {
		details["name"] = "required"
	}
	if r.Position == "" {
		details["position"] = "required"
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		details["email"] = "must be a valid email address"
	}
	return details
}

func (r FacultyCreateRequest) ToDomain() *domain.Faculty {
	return &domain.Faculty{
		Name:           r.Name,
		Position:       r.Position,
		Qualification:  r.Qualification,
		Specialization: r.Specialization,
		Email:          r.Email,
		Phone:          r.Phone,
		ImageURL:       r.ImageURL,
		Order:          r.Order,
	}
}

// FacultyUpdateRequest carries a partial update; nil fields stay untouched.
type FacultyUpdateRequest struct {
	Name           *string `json:"name"`
	Position       *string `json:"position"`
	Qualification  *string `json:"qualification"`
	Specialization *string `json:"specialization"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	ImageURL       *string `json:"imageUrl"`
	Order          *int    `json:"order"`
}

func (r FacultyUpdateRequest) Apply(member *domain.Faculty) {
	if r.Name != nil {
		member.Name = *r.Name
	}
	if r.Position != nil {
		member.Position = *r.Position
	}
	if r.Qualification != nil {
		member.Qualification = *r.Qualification
	}
	if r.Specialization != nil {
		member.Specialization = *r.Specialization
	}
	if r.Email != nil {
		member.Email = *r.Email
	}
	if r.Phone != nil {
		member.Phone = *r.Phone
	}
	if r.ImageURL != nil {
		member.ImageURL = *r.ImageURL
	}
	if r.Order != nil {
		member.Order = *r.Order
	}
}
