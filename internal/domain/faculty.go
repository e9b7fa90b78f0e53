package domain

import "time"

// Faculty is a department staff profile shown on the public site.
type Faculty struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Position       string    `json:"position"`
	Qualification  string    `json:"qualification"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ImageURL       string    `json:"imageUrl"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
