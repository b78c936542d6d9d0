// Package common defines shared sentinel errors used across the
// backend layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists reports a username/email collision or any other
	// storage uniqueness violation that is surfaced to the caller.
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks bad or missing input. Wrap it with a
	// human-readable detail: fmt.Errorf("%w: password required", ErrValidation).
	ErrValidation = errors.New("validation error")

	// Auth errors (invalid, malformed, or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
