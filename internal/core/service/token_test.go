package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

var testClaims = domain.TokenClaims{
	FirstName: "Ana",
	LastName:  "García",
	Email:     "ana@example.com",
	Role:      domain.RoleUser,
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	iss := NewTokenIssuer("secret", time.Hour)

	token, err := iss.Issue(testClaims)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	got, err := iss.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got != testClaims {
		t.Fatalf("claims mismatch: got %+v, want %+v", got, testClaims)
	}
}

func TestTokenIssuer_IdenticalClaimsDistinctTokens(t *testing.T) {
	iss := NewTokenIssuer("secret", time.Hour)

	first, err := iss.Issue(testClaims)
	if err != nil {
		t.Fatalf("first Issue: %v", err)
	}
	second, err := iss.Issue(testClaims)
	if err != nil {
		t.Fatalf("second Issue: %v", err)
	}

	if first == second {
		t.Fatalf("expected two issues of identical claims to produce distinct tokens")
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	iss := &TokenIssuer{secret: []byte("secret"), ttl: -time.Minute}

	token, err := iss.Issue(testClaims)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := iss.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_Tampered(t *testing.T) {
	iss := NewTokenIssuer("secret", time.Hour)

	token, err := iss.Issue(testClaims)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}

	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := iss.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)

	token, err := issuer.Issue(testClaims)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken under a different secret, got %v", err)
	}
}
