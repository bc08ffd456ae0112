package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/corebank/ledger-service/internal/domain"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	credentials := &fakeCredentialRepo{users: map[string]domain.AuthorizedUser{
		"admin": {Username: "admin", PasswordHash: string(hash)},
	}}
	return NewAuthService(credentials, "test-signing-secret", time.Hour)
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	auth := newAuthFixture(t)

	token, err := auth.Login(context.Background(), "admin", "secret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	username, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if username != "admin" {
		t.Fatalf("expected username admin, got %q", username)
	}
}

func TestAuthService_WrongPasswordRejected(t *testing.T) {
	auth := newAuthFixture(t)

	if _, err := auth.Login(context.Background(), "admin", "wrong"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestAuthService_UnknownUserRejected(t *testing.T) {
	auth := newAuthFixture(t)

	if _, err := auth.Login(context.Background(), "ghost", "secret-pass"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestAuthService_EmptyCredentialsRejected(t *testing.T) {
	auth := newAuthFixture(t)

	if _, err := auth.Login(context.Background(), "", "secret-pass"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for empty username, got %v", err)
	}
	if _, err := auth.Login(context.Background(), "admin", ""); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for empty password, got %v", err)
	}
}

func TestAuthService_TamperedTokenRejected(t *testing.T) {
	auth := newAuthFixture(t)

	token, err := auth.Login(context.Background(), "admin", "secret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, err := auth.ValidateToken(token + "x"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for tampered token, got %v", err)
	}
	if _, err := auth.ValidateToken("not-a-token"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for garbage token, got %v", err)
	}
}

func TestAuthService_TokenFromDifferentSecretRejected(t *testing.T) {
	auth := newAuthFixture(t)
	other := NewAuthService(&fakeCredentialRepo{users: map[string]domain.AuthorizedUser{}}, "other-secret", time.Hour)

	token, err := auth.Login(context.Background(), "admin", "secret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized across secrets, got %v", err)
	}
}
