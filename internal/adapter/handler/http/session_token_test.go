package http

import (
	"testing"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signSessionToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestSessionTokenService_VerifyToken(t *testing.T) {
	svc := NewSessionTokenService(testSecret, nopLogger{})

	signed := signSessionToken(t, testSecret, jwt.MapClaims{
		"sub":     "user-1",
		"email":   "ada@example.com",
		"name":    "Ada Lovelace",
		"picture": "https://cdn.example.com/ada.png",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "Ada Lovelace", identity.DisplayName)
	assert.Equal(t, "https://cdn.example.com/ada.png", identity.Picture)
}

func TestSessionTokenService_VerifyToken_WrongSecret(t *testing.T) {
	svc := NewSessionTokenService(testSecret, nopLogger{})

	signed := signSessionToken(t, "another-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifyToken(signed)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionTokenService_VerifyToken_Expired(t *testing.T) {
	svc := NewSessionTokenService(testSecret, nopLogger{})

	signed := signSessionToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.VerifyToken(signed)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionTokenService_VerifyToken_MissingSubject(t *testing.T) {
	svc := NewSessionTokenService(testSecret, nopLogger{})

	signed := signSessionToken(t, testSecret, jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifyToken(signed)
	assert.Error(t, err)
}

func TestSessionTokenService_VerifyToken_Garbage(t *testing.T) {
	svc := NewSessionTokenService(testSecret, nopLogger{})

	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
