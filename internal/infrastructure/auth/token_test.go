package auth

import (
	"context"
	"testing"
	"time"

	"modelhub-server/internal/domain/user"
	"modelhub-server/internal/utils/platformerrors"
)

func newTestTokenService(secret string) *TokenService {
	return NewTokenService(secret, "modelhub", time.Hour)
}

func TestIssueAndVerify(t *testing.T) {
	tokens := newTestTokenService("a-very-long-test-secret")
	account := &user.User{ID: 42, Email: "admin@example.com", IsSuperuser: true}

	signed, expiresAt, err := tokens.Issue(context.Background(), account)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiry not in the future: %v", expiresAt)
	}

	claims, err := tokens.Verify(context.Background(), signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Email != "admin@example.com" || !claims.IsSuperuser {
		t.Fatalf("claims not round-tripped: %+v", claims)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("subject not numeric: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected user id 42, got %d", id)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, _, err := newTestTokenService("a-very-long-test-secret").
		Issue(context.Background(), &user.User{ID: 1, Email: "u@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = newTestTokenService("a-different-test-secret").Verify(context.Background(), signed)
	if err == nil {
		t.Fatal("expected verification to fail")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	other := NewTokenService("a-very-long-test-secret", "someone-else", time.Hour)
	signed, _, err := other.Issue(context.Background(), &user.User{ID: 1, Email: "u@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := newTestTokenService("a-very-long-test-secret").Verify(context.Background(), signed); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := NewTokenService("a-very-long-test-secret", "modelhub", -time.Minute)
	signed, _, err := expired.Issue(context.Background(), &user.User{ID: 1, Email: "u@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := newTestTokenService("a-very-long-test-secret").Verify(context.Background(), signed); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := newTestTokenService("a-very-long-test-secret").Verify(context.Background(), "not.a.token"); err == nil {
		t.Fatal("expected parse failure")
	}
}
