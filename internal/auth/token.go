package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/viet-college/department-cms/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens. Tokens are
// self-contained: validity is determined entirely by signature and expiry,
// with no server-side session state and no revocation list.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl == 0 {
		ttl = 168 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload carried by every issued token.
type Claims struct {
	UserID   string      `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Generate builds and signs a token for the user.
func (tm *TokenManager) Generate(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns the claims. Errors are the
// jwt sentinel errors, so callers can discriminate expiry from tampering.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, tm.keyFunc)
	if err != nil {
		return nil, err
	}
	return tokenClaims(parsed)
}

// ParseIgnoringExpiry verifies the signature but skips claim validation, so an
// expired token can still be exchanged for a fresh one by the refresh flow.
func (tm *TokenManager) ParseIgnoringExpiry(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, tm.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}
	return tokenClaims(parsed)
}

func (tm *TokenManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return tm.secret, nil
}

func tokenClaims(parsed *jwt.Token) (*Claims, error) {
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
