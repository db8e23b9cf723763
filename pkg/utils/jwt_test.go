package utils

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", "test-issuer")

	token, err := m.GenerateToken("user-1", "a@b.com", "access", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" || claims.Type != "access" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", "test-issuer")

	token, err := m.GenerateToken("user-1", "a@b.com", "access", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrExpiredToken {
		t.Errorf("ParseToken error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", "test-issuer")
	token, err := m.GenerateToken("user-1", "a@b.com", "access", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTManager("secret-b", "test-issuer")
	if _, err := other.ParseToken(token); err != ErrInvalidToken {
		t.Errorf("ParseToken error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTTokenPair(t *testing.T) {
	m := NewJWTManager("test-secret", "test-issuer")

	pair, err := m.GenerateTokenPair("user-1", "a@b.com", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	access, err := m.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if access.Type != "access" {
		t.Errorf("access type = %q", access.Type)
	}

	refresh, err := m.ParseToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if refresh.Type != "refresh" {
		t.Errorf("refresh type = %q", refresh.Type)
	}
}
