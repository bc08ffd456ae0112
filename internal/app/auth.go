/**
 * @description
 * Authentication service for the API surface. Logins are checked against
 * bcrypt hashes in the authorized_users table and exchanged for HS256-signed
 * JWTs. Token validation returns the authenticated username.
 *
 * Credential failures of any kind (unknown user, wrong password) collapse
 * into ErrNotAuthorized so responses do not reveal which part failed.
 *
 * @dependencies
 * - github.com/golang-jwt/jwt/v5: Token signing and validation.
 * - golang.org/x/crypto/bcrypt: Password hash comparison.
 * - internal/store: Credential lookup.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/corebank/ledger-service/internal/store"
)

// AuthService issues and validates API tokens.
type AuthService struct {
	credentials store.CredentialRepository
	secret      []byte
	tokenTTL    time.Duration
}

func NewAuthService(credentials store.CredentialRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{credentials: credentials, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Login verifies the credentials and returns a signed token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrNotAuthorized
	}

	user, err := s.credentials.FindAuthorizedUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrNotAuthorized
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrNotAuthorized
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		Issuer:    "ledger-service",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning the authenticated
// username. Any parse, signature, or expiry failure yields ErrNotAuthorized.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrNotAuthorized
	}
	return claims.Subject, nil
}
