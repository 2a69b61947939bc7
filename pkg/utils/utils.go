package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identify a session by the external identity, not the database row,
// so a token survives a re-created user row.
type Claims struct {
	OpenID string `json:"openId"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(openID, name, secret string, ttl time.Duration) (string, error) {
	if openID == "" {
		return "", fmt.Errorf("generate token: empty open id")
	}
	now := time.Now()
	claims := Claims{
		OpenID: openID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   openID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.OpenID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
