package dto

import "github.com/viet-college/department-cms/internal/domain"

// MediaCreateRequest is the admin payload for a new gallery item.
type MediaCreateRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Description  string `json:"description"`
	Published    *bool  `json:"published"`
}

func (r MediaCreateRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Title == "" {
		details["title"] = "required"
	}
	if r.URL == "" {
		details["url"] = "required"
	}
	if r.Category == "" {
		details["category"] = "required"
	}
	return details
}

func (r MediaCreateRequest) ToDomain() *domain.Media {
	item := &domain.Media{
		Title:        r.Title,
		Category:     r.Category,
		URL:          r.URL,
		ThumbnailURL: r.ThumbnailURL,
		Description:  r.Description,
	}
	if r.Published != nil {
		item.Published = *r.Published
	}
	return item
}

// MediaUpdateRequest carries a partial update; nil fields stay untouched.
type MediaUpdateRequest struct {
	Title        *string `json:"title"`
	Category     *string `json:"category"`
	URL          *string `json:"url"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Description  *string `json:"description"`
	Published    *bool   `json:"published"`
}

func (r MediaUpdateRequest) Apply(item *domain.Media) {
	if r.Title != nil {
		item.Title = *r.Title
	}
	if r.Category != nil {
		item.Category = *r.Category
	}
	if r.URL != nil {
		item.URL = *r.URL
	}
	if r.ThumbnailURL != nil {
		item.ThumbnailURL = *r.ThumbnailURL
	}
	if r.Description != nil {
		item.Description = *r.Description
	}
	if r.Published != nil {
		item.Published = *r.Published
	}
}
