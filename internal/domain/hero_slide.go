package domain

import "time"

// HeroSlide is a rotating banner on the public home page.
type HeroSlide struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	Description     string    `json:"description"`
	BackgroundImage string    `json:"backgroundImage"`
	CtaText         string    `json:"ctaText"`
	CtaLink         string    `json:"ctaLink"`
	Order           int       `json:"order"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
