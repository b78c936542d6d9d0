// Package auth implements the stateless credential primitives: signed
// bearer tokens (HS256 JWT) and bcrypt password hashing.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hallowedlibrary/backend/internal/common"
)

// TokenService issues and verifies signed, time-limited identity tokens.
// The signing key is injected at construction and never leaves the process;
// tokens are not persisted, validity is purely signature + expiry.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue builds a token whose subject is the user id, signed with HS256.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify recomputes the signature and returns the user id carried in the
// subject. Any failure (bad signature, malformed structure, unparseable
// subject, expired) collapses into common.ErrInvalidToken. An issued-at
// in the future is tolerated: only the signature and expiry gate validity.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	return userID, nil
}
