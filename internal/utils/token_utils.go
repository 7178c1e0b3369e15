package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignAccessToken issues an HS256 token for subject, in the shape AuthMiddleware accepts.
// Upstream identity providers normally issue these; this is for operators and local testing.
func SignAccessToken(subject, secret, issuer string, ttl time.Duration, now time.Time) (string, error) {
	if subject == "" {
		return "", errors.New("token subject cannot be empty")
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
