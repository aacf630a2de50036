package service

import (
	"errors"
	"testing"
	"time"

	"elampillai/storefront/internal/domain"
)

func newTestAuth() *AuthManager {
	return NewAuthManager("0123456789abcdef0123456789abcdef", time.Hour, SystemClock())
}

func registerReq(name, email, password string) domain.RegisterRequest {
	return domain.RegisterRequest{Name: name, Email: email, Password: password}
}

func TestIssueAndParseTokenRoundTrip(t *testing.T) {
	auth := newTestAuth()

	user, err := auth.Authenticate("priya@example.com", "anything")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	token, _, err := auth.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parsed, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.ID != user.ID || parsed.Email != user.Email || parsed.IsAdmin {
		t.Fatalf("token lost identity: %+v", parsed)
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	issuer := newTestAuth()
	verifier := NewAuthManager("another-secret-entirely-32-chars!", time.Hour, SystemClock())

	user, err := issuer.Authenticate("priya@example.com", "x")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	token, _, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	auth := newTestAuth()
	if _, err := auth.ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAdminTokenCarriesAdminFlag(t *testing.T) {
	auth := newTestAuth()

	admin, err := auth.Authenticate(AdminEmail, "x")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	token, _, err := auth.Issue(admin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parsed, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.IsAdmin {
		t.Fatalf("expected admin flag preserved in token")
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := newTestAuth()

	if _, err := auth.Register(registerReq("", "a@b.c", "secret123")); err == nil {
		t.Fatalf("expected missing name rejection")
	}
	if _, err := auth.Register(registerReq("Priya", "", "secret123")); err == nil {
		t.Fatalf("expected missing email rejection")
	}
	if _, err := auth.Register(registerReq("Priya", "a@b.c", "short")); err == nil {
		t.Fatalf("expected short password rejection")
	}
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	auth := newTestAuth()
	if _, err := auth.Register(registerReq("Priya", "priya@example.com", "secret123")); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := auth.Authenticate("  PRIYA@Example.COM ", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Name != "Priya" {
		t.Fatalf("expected registered account matched case-insensitively, got %+v", user)
	}
}
