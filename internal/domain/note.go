package domain

import "time"

// Note is downloadable study material, grouped by semester.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Semester    string    `json:"semester"`
	Description string    `json:"description"`
	FileURL     string    `json:"fileUrl"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
