package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest("POST", "/trips", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, "test-secret", "42"))

	userID, err := verifyToken(r)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestVerifyToken_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest("POST", "/trips", nil)
	_, err := verifyToken(r)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest("POST", "/trips", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", "42"))

	_, err := verifyToken(r)
	assert.Error(t, err)
}

func TestVerifyToken_BadSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := httptest.NewRequest("POST", "/trips", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, "test-secret", "not-a-user"))

	_, err := verifyToken(r)
	assert.Error(t, err)
}
