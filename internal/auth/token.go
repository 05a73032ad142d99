// Package auth issues and verifies the bearer tokens the API runs on,
// and provides the gin middlewares that enforce them per route.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard/internal/apperrors"
)

// Claims is the token payload: who, and whether they administrate.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

const tokenTTL = 24 * time.Hour

// secretKey reads SECRET_KEY, with a dev fallback so local runs work
// without a .env file.
func secretKey() []byte {
	if key := os.Getenv("SECRET_KEY"); key != "" {
		return []byte(key)
	}
	return []byte("secret-dev")
}

// CreateToken signs a token for the given user.
func CreateToken(username string, isAdmin bool) (string, error) {
	claims := Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secretKey())
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token. Any failure maps to
// ErrUnauthorized; the caller never needs to distinguish expired from
// forged.
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, apperrors.Unauthorizedf("invalid token")
	}
	return claims, nil
}
