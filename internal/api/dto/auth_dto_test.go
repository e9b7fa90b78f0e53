package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viet-college/department-cms/internal/domain"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		problem string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Username: "alice", Email: "alice@example.edu", Password: "longenough"},
		},
		{
			name:    "missing username",
			req:     RegisterRequest{Email: "alice@example.edu", Password: "longenough"},
			problem: "username",
		},
		{
			name:    "bad email",
			req:     RegisterRequest{Username: "alice", Email: "not-an-email", Password: "longenough"},
			problem: "email",
		},
		{
			name:    "short password",
			req:     RegisterRequest{Username: "alice", Email: "alice@example.edu", Password: "short"},
			problem: "password",
		},
		{
			name:    "unknown role",
			req:     RegisterRequest{Username: "alice", Email: "alice@example.edu", Password: "longenough", Role: "superuser"},
			problem: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := tt.req.Validate()
			if tt.problem == "" {
				assert.Empty(t, details)
			} else {
				assert.Contains(t, details, tt.problem)
			}
		})
	}
}

func TestRegisterRequestAcceptsKnownRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleUser} {
		req := RegisterRequest{Username: "alice", Email: "alice@example.edu", Password: "longenough", Role: role}
		assert.Empty(t, req.Validate(), "role %s", role)
	}
}
