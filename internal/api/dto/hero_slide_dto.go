package dto

import "github.com/viet-college/department-cms/internal/domain"

// HeroSlideCreateRequest is the admin payload for a new slide.
type HeroSlideCreateRequest struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
	CtaText         string `json:"ctaText"`
	CtaLink         string `json:"ctaLink"`
	Order           int    `json:"order"`
	Published       *bool  `json:"published"`
}

func (r HeroSlideCreateRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Title == "" {
		details["title"] = "required"
	}
	return details
}

// ToDomain applies the original defaults for omitted presentation fields.
func (r HeroSlideCreateRequest) ToDomain() *domain.HeroSlide {
	slide := &domain.HeroSlide{
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		Description:     r.Description,
		BackgroundImage: r.BackgroundImage,
		CtaText:         r.CtaText,
		CtaLink:         r.CtaLink,
		Order:           r.Order,
		Published:       true,
	}
	if slide.BackgroundImage == "" {
		slide.BackgroundImage = "/default-hero-bg.jpg"
	}
	if slide.CtaText == "" {
		slide.CtaText = "Learn More"
	}
	if slide.CtaLink == "" {
		slide.CtaLink = "#"
	}
	if r.Published != nil {
		slide.Published = *r.Published
	}
	return slide
}

// HeroSlideUpdateRequest carries a partial update; nil fields stay untouched.
type HeroSlideUpdateRequest struct {
	Title           *string `json:"title"`
	Subtitle        *string `json:"subtitle"`
	Description     *string `json:"description"`
	BackgroundImage *string `json:"backgroundImage"`
	CtaText         *string `json:"ctaText"`
	CtaLink         *string `json:"ctaLink"`
	Order           *int    `json:"order"`
	Published       *bool   `json:"published"`
}

func (r HeroSlideUpdateRequest) Apply(slide *domain.HeroSlide) {
	if r.Title != nil {
		slide.Title = *r.Title
	}
	if r.Subtitle != nil {
		slide.Subtitle = *r.Subtitle
	}
	if r.Description != nil {
		slide.Description = *r.Description
	}
	if r.BackgroundImage != nil {
		slide.BackgroundImage = *r.BackgroundImage
	}
	if r.CtaText != nil {
		slide.CtaText = *r.CtaText
	}
	if r.CtaLink != nil {
		slide.CtaLink = *r.CtaLink
	}
	if r.Order != nil {
		slide.Order = *r.Order
	}
	if r.Published != nil {
		slide.Published = *r.Published
	}
}
