package dto

import (
	"regexp"
	"time"

	"github.com/viet-college/department-cms/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// LoginRequest is the credential payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the new account payload. Role is optional and defaults
// to the non-admin role.
type RegisterRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role,omitempty"`
}

// Validate returns per-field problems, empty when the payload is acceptable.
func (r RegisterRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Username == "" {
		details["username"] = "required"
	}
	switch {
	case r.Email == "":
		details["email"] = "required"
	case !emailPattern.MatchString(r.Email):
		details["email"] = "must be a valid email address"
	}
	switch {
	case r.Password == "":
		details["password"] = "required"
	case len(r.Password) < 8:
		details["password"] = "must be at least 8 characters"
	}
	if r.Role != "" && !r.Role.Valid() {
		details["role"] = "must be admin or user"
	}
	return details
}

// RefreshRequest carries the old (possibly expired) token.
type RefreshRequest struct {
	Token string `json:"token"`
}

// AuthResponse is the standard success payload for login and refresh.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}
