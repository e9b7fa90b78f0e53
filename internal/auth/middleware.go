package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/viet-college/department-cms/internal/domain"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

const claimsKey = "auth_claims"

// Middleware gates protected routes on a valid bearer token. Verification is a
// pure function of (token, current time, secret); no database lookup happens
// per request.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate validates the Authorization header and attaches the decoded
// claims to the request. The failure modes stay distinct so the dashboard can
// tell a refreshable expiry apart from tampering or a missing header:
//
//	no/malformed header -> 401 MISSING_TOKEN
//	expired signature-valid token -> 401 TOKEN_EXPIRED
//	structurally malformed token -> 401 INVALID_TOKEN
//	well-formed but rejected token -> 403 TOKEN_INVALID
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return apperrors.NewMissingToken()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return apperrors.NewMissingToken()
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return apperrors.NewTokenExpired()
		case errors.Is(err, jwt.ErrTokenMalformed):
			return apperrors.NewInvalidTokenFormat()
		default:
			return apperrors.NewTokenInvalid()
		}
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequireAdmin enforces the admin role. Must run after Authenticate.
func (m *Middleware) RequireAdmin(c *fiber.Ctx) error {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	if claims.Role != domain.RoleAdmin {
		return apperrors.NewAdminRequired()
	}
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated claims for the request.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
