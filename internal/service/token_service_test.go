package service

import (
	"testing"
	"time"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	identity, ok := svc.Verify(token)
	if !ok {
		t.Fatalf("expected valid token")
	}
	if identity.ID != "u1" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	svc := NewTokenService("secret")
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(23*time.Hour + 59*time.Minute) }
	if _, ok := svc.Verify(token); !ok {
		t.Fatalf("expected token valid before expiry")
	}

	svc.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
	if _, ok := svc.Verify(token); ok {
		t.Fatalf("expected token expired")
	}
}

func TestTokenService_VerifyAbsentInputs(t *testing.T) {
	svc := NewTokenService("secret")

	cases := map[string]string{
		"empty":     "",
		"garbage":   "not-a-token",
		"truncated": "eyJhbGciOiJIUzI1NiJ9.eyJpZCI6InUxIn0",
	}
	for name, token := range cases {
		if _, ok := svc.Verify(token); ok {
			t.Fatalf("%s: expected absent identity", name)
		}
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	signer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := signer.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, ok := verifier.Verify(token); ok {
		t.Fatalf("expected signature mismatch to be absent")
	}
}

func TestTokenService_RejectsEmptySecret(t *testing.T) {
	svc := NewTokenService("")
	if _, err := svc.Issue("u1"); err == nil {
		t.Fatalf("expected issue to fail without secret")
	}
	if _, ok := svc.Verify("anything"); ok {
		t.Fatalf("expected verify to be absent without secret")
	}
}

func TestTokenService_RejectsEmptyUserID(t *testing.T) {
	svc := NewTokenService("secret")
	if _, err := svc.Issue(""); err == nil {
		t.Fatalf("expected issue to fail without user id")
	}
}
