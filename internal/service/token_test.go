package service

import (
	"errors"
	"testing"
	"time"

	"github.com/carbontrade/carboncert/internal/apperrors"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := issuer.Decode(token)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("Decode = %d; want 42", userID)
	}
}

func TestTokenIssuer_ExpiresIn(t *testing.T) {
	issuer := NewTokenIssuer("secret", 90*time.Second)
	if got := issuer.ExpiresIn(); got != 90 {
		t.Errorf("ExpiresIn = %d; want 90", got)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = issuer.Decode(token)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = other.Decode(token)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "not.a.jwt"},
		{"random string", "Bearer something"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := issuer.Decode(tc.token); !errors.Is(err, apperrors.ErrUnauthorized) {
				t.Errorf("Decode(%q) error = %v; want ErrUnauthorized", tc.token, err)
			}
		})
	}
}
