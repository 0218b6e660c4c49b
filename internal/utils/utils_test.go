package utils

import (
	"testing"
	"time"

	"github.com/EasWay/bina-mobile/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{
		Server: config.ServerConfig{
			JWTSecret:          "test-secret",
			JWTAlgorithm:       "HS256",
			JWTExpirationHours: 1,
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("ama@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", email)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "ama@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "ama@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsUnexpectedAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "ama@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
