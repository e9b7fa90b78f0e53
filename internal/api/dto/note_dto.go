package dto

import "github.com/viet-college/department-cms/internal/domain"

// NoteCreateRequest is the admin payload for new study material.
type NoteCreateRequest struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Semester    string `json:"semester"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	Published   *bool  `json:"published"`
}

func (r NoteCreateRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Title == "" {
		details["title"] = "required"
	}
	if r.Subject == "" {
		details["subject"] = "required"
	}
	if r.Semester == "" {
		details["semester"] = "required"
	}
	if r.FileURL == "" {
		details["fileUrl"] = "required"
	}
	return details
}

func (r NoteCreateRequest) ToDomain() *domain.Note {
	note := &domain.Note{
		Title:       r.Title,
		Subject:     r.Subject,
		Semester:    r.Semester,
		Description: r.Description,
		FileURL:     r.FileURL,
	}
	if r.Published != nil {
		note.Published = *r.Published
	}
	return note
}

// NoteUpdateRequest carries a partial update; nil fields stay untouched.
type NoteUpdateRequest struct {
	Title       *string `json:"title"`
	Subject     *string `json:"subject"`
	Semester    *string `json:"semester"`
	Description *string `json:"description"`
	FileURL     *string `json:"fileUrl"`
	Published   *bool   `json:"published"`
}

func (r NoteUpdateRequest) Apply(note *domain.Note) {
	if r.Title != nil {
		note.Title = *r.Title
	}
	if r.Subject != nil {
		note.Subject = *r.Subject
	}
	if r.Semester != nil {
		note.Semester = *r.Semester
	}
	if r.Description != nil {
		note.Description = *r.Description
	}
	if r.FileURL != nil {
		note.FileURL = *r.FileURL
	}
	if r.Published != nil {
		note.Published = *r.Published
	}
}
