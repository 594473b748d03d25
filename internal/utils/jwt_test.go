package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("store-side-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestParseTokenExpiry_WithExp(t *testing.T) {
	want := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, jwt.MapClaims{"id": "u1", "exp": want.Unix()})

	exp, ok, err := ParseTokenExpiry(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !ok {
		t.Fatal("expected token to carry an expiry")
	}
	if !exp.Equal(want) {
		t.Errorf("expected exp %v, got %v", want, exp)
	}
}

func TestParseTokenExpiry_WithoutExp(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": "u1"})

	_, ok, err := ParseTokenExpiry(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ok {
		t.Error("expected no expiry")
	}
}

func TestParseTokenExpiry_SignatureIsNotVerified(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()})
	tampered := token[:len(token)-4] + "AAAA"

	_, ok, err := ParseTokenExpiry(tampered)

	if err != nil {
		t.Fatalf("expected unverified parse to succeed, got: %v", err)
	}
	if !ok {
		t.Error("expected expiry to be read")
	}
}

func TestParseTokenExpiry_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"bad payload", "eyJhbGciOiJIUzI1NiJ9.%%%.sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTokenExpiry(tt.token)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseTokenExpiry_EmptyTokenSentinel(t *testing.T) {
	_, _, err := ParseTokenExpiry("")
	if !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}
