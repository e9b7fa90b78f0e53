package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viet-college/department-cms/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "11111111-1111-1111-1111-111111111111",
		Username: "alice",
		Role:     domain.RoleAdmin,
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, claims.UserID, claims.Subject)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
}

func TestDefaultTTLIsSevenDays(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, expiresAt, err := tm.Generate(testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), expiresAt, 5*time.Second)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Hour)

	token, _, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseTamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("another-secret", time.Hour)

	token, _, err := other.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
	assert.False(t, errors.Is(err, jwt.ErrTokenMalformed))
}

func TestParseMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("definitely-not-a-jwt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}

func TestParseRejectsWrongSigningMethod(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	claims := &Claims{Username: "alice", Role: domain.RoleUser}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Parse(signed)
	require.Error(t, err)
}

func TestParseIgnoringExpiryAcceptsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Hour)

	token, _, err := tm.Generate(testUser())
	require.NoError(t, err)

	claims, err := tm.ParseIgnoringExpiry(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseIgnoringExpiryStillChecksSignature(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("another-secret", time.Hour)

	token, _, err := other.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.ParseIgnoringExpiry(token)
	require.Error(t, err)
}
