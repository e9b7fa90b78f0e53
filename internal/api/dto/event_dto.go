package dto

import (
	"time"

	"github.com/viet-college/department-cms/internal/domain"
)

// EventCreateRequest is the admin payload for a new event. Timestamps are
// RFC 3339.
type EventCreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"imageUrl"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	Published   *bool      `json:"published"`
}

func (r EventCreateRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Title == "" {
		details["title"] = "required"
	}
	if r.StartsAt.IsZero() {
		details["startsAt"] = "required"
	}
	if r.EndsAt != nil && r.EndsAt.Before(r.StartsAt) {
		details["endsAt"] = "must not be before startsAt"
	}
	return details
}

func (r EventCreateRequest) ToDomain() *domain.Event {
	event := &domain.Event{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
	}
	if r.Published != nil {
		event.Published = *r.Published
	}
	return event
}

// EventUpdateRequest carries a partial update; nil fields stay untouched.
type EventUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	ImageURL    *string    `json:"imageUrl"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	Published   *bool      `json:"published"`
}

func (r EventUpdateRequest) Apply(event *domain.Event) {
	if r.Title != nil {
		event.Title = *r.Title
	}
	if r.Description != nil {
		event.Description = *r.Description
	}
	if r.Location != nil {
		event.Location = *r.Location
	}
	if r.ImageURL != nil {
		event.ImageURL = *r.ImageURL
	}
	if r.StartsAt != nil {
		event.StartsAt = *r.StartsAt
	}
	if r.EndsAt != nil {
		event.EndsAt = r.EndsAt
	}
	if r.Published != nil {
		event.Published = *r.Published
	}
}
