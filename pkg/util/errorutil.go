package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewBadRequest(message string) error {
	return NewDomainError("BAD_REQUEST", message, http.StatusBadRequest, nil)
}

func NewNotFound(resource string) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewInvalidCredentials is deliberately identical for unknown usernames and wrong
// passwords so the response never reveals which usernames exist.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized, nil)
}

func NewMissingToken() error {
	return NewDomainError("MISSING_TOKEN", "Access token required", http.StatusUnauthorized, nil)
}

func NewTokenExpired() error {
	return NewDomainError("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized, nil)
}

func NewInvalidTokenFormat() error {
	return NewDomainError("INVALID_TOKEN", "Invalid token format", http.StatusUnauthorized, nil)
}

func NewInvalidToken() error {
	return NewDomainError("INVALID_TOKEN", "Invalid token", http.StatusUnauthorized, nil)
}

func NewTokenInvalid() error {
	return NewDomainError("TOKEN_INVALID", "Invalid or expired token", http.StatusForbidden, nil)
}

func NewAdminRequired() error {
	return NewDomainError("ADMIN_REQUIRED", "Admin access required", http.StatusForbidden, nil)
}

func NewUserNotFound() error {
	return NewDomainError("USER_NOT_FOUND", "User not found", http.StatusUnauthorized, nil)
}

func NewConflict(code, message string) error {
	return NewDomainError(code, message, http.StatusConflict, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewDomainError("NOT_FOUND", "resource not found", http.StatusNotFound, nil)
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
