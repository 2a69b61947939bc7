package utils

import (
	"errors"
	"testing"
	"time"
)

func TestJWT(t *testing.T) {
	secret := "supersecret"
	openID := "oid-123"
	name := "Sam"

	token, err := GenerateToken(openID, name, secret, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.OpenID != openID {
		t.Errorf("Expected OpenID %s, got %s", openID, claims.OpenID)
	}

	if claims.Name != name {
		t.Errorf("Expected Name %s, got %s", name, claims.Name)
	}

	_, err = ValidateToken(token, "wrongsecret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken with wrong secret, got %v", err)
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateToken("oid-1", "", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := ValidateToken(token, "secret"); err == nil {
		t.Errorf("Expected error for expired token")
	}
}

func TestGenerateTokenRequiresOpenID(t *testing.T) {
	if _, err := GenerateToken("", "x", "secret", time.Hour); err == nil {
		t.Errorf("Expected error without open id")
	}
}
