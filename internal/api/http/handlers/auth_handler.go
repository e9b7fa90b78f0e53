package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/viet-college/department-cms/internal/api/dto"
	"github.com/viet-college/department-cms/internal/auth"
	"github.com/viet-college/department-cms/internal/service"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// AuthHandler exposes the authentication endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewBadRequest("Username and password are required")
	}

	user, token, expiresAt, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: expiresAt, User: user})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if details := req.Validate(); len(details) > 0 {
		return apperrors.NewValidationError("Invalid input", details)
	}

	user, err := h.auth.Register(c.UserContext(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// Refresh handles POST /api/auth/refresh. The old token may be expired; only
// its signature has to hold.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if req.Token == "" {
		return apperrors.NewBadRequest("Token required")
	}

	user, token, expiresAt, err := h.auth.Refresh(c.UserContext(), req.Token)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: expiresAt, User: user})
}

// Verify handles GET /api/auth/verify, gated by the auth middleware.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		},
		"message": "Token is valid",
	})
}
