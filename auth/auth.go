package auth

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrBadCredential = errors.New("invalid admin password")
	ErrInvalidToken  = errors.New("invalid session token")
)

// CheckPassword compares a supplied password against the stored admin
// credential in constant time.
func CheckPassword(supplied, stored string) error {
	if !hmac.Equal([]byte(supplied), []byte(stored)) {
		return ErrBadCredential
	}
	return nil
}

// IssueToken creates a signed admin session token valid for ttl.
func IssueToken(secret string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates an admin session token's signature and expiry.
func VerifyToken(secret, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != "admin" {
		return ErrInvalidToken
	}
	return nil
}
