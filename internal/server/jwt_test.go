package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/config"
)

func newJWT(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWT_RoundTrip(t *testing.T) {
	service := newJWT(t)

	token, err := service.GenerateToken("api-client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "api-client", subject)
}

func TestJWT_EmptyToken(t *testing.T) {
	service := newJWT(t)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestJWT_GarbageToken(t *testing.T) {
	service := newJWT(t)

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	service := newJWT(t)
	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", ExpirationHours: 1})

	token, err := service.GenerateToken("api-client")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	service := newJWT(t)

	// Hand-craft a token that expired an hour ago with the same secret.
	claims := jwt.RegisteredClaims{
		Subject:   "api-client",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWT_RejectsUnexpectedSigningMethod(t *testing.T) {
	service := newJWT(t)

	// alg=none style token should never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}
