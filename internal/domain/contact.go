package domain

import "time"

// ContactStatus tracks how far the staff got with a submission.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
)

// Valid reports whether the status is one of the known values.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusResponded:
		return true
	}
	return false
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
