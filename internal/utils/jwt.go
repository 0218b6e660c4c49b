package utils

import (
	"errors"
	"time"

	"github.com/EasWay/bina-mobile/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken issues a signed token whose subject is the user's email.
// Algorithm and lifetime come from configuration (HS256 / 24h by default).
func GenerateToken(email string) (string, error) {
	cfg := config.AppConfig.Server

	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return "", errors.New("unsupported signing algorithm: " + cfg.JWTAlgorithm)
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWTExpirationHours) * time.Hour)),
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ValidateToken verifies the signature and expiry and returns the subject
// email. Callers must still resolve the email to a live user.
func ValidateToken(tokenString string) (string, error) {
	cfg := config.AppConfig.Server

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{cfg.JWTAlgorithm}),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
