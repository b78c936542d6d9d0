package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hallowedlibrary/backend/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour)

	tok, err := svc.Issue(123)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != 123 {
		t.Fatalf("userID mismatch: got %d want 123", got)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), -1*time.Second)

	tok, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService([]byte("right-secret"), time.Hour).Issue(2)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), time.Hour)
	tok, err := svc.Issue(3)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip the last byte of the signature segment.
	flipped := []byte(tok)
	last := len(flipped) - 1
	if flipped[last] == 'A' {
		flipped[last] = 'B'
	} else {
		flipped[last] = 'A'
	}

	_, err = svc.Verify(string(flipped))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService([]byte("k"), time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerify_NonNumericSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = NewTokenService(secret, time.Hour).Verify(signed)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for non-numeric subject, got %v", err)
	}
}

func TestVerify_FutureIssuedAtTolerated(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		IssuedAt:  jwt.NewNumericDate(now.Add(10 * time.Minute)),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	got, err := NewTokenService(secret, time.Hour).Verify(signed)
	if err != nil {
		t.Fatalf("Verify error for future iat: %v", err)
	}
	if got != 7 {
		t.Fatalf("userID mismatch: got %d want 7", got)
	}
}

func TestIssue_ThreePartStructure(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService([]byte("secret"), time.Hour).Issue(9)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if parts := strings.Split(tok, "."); len(parts) != 3 {
		t.Fatalf("expected header.payload.signature, got %d parts", len(parts))
	}
}
