package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hallowedlibrary/backend/internal/common"
	"github.com/hallowedlibrary/backend/internal/server/auth"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Username             string
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Service handles account creation, credential verification, and token
// issuance for logged-in users.
type Service struct {
	repo   Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewService(repo Repository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register validates the input, checks username/email uniqueness, hashes
// the password, and creates the account. Two concurrent signups with the
// same username can both pass the pre-checks; the storage unique
// constraint catches the loser and the collision surfaces as
// common.ErrAlreadyExists. That race is deliberately not reconciled.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {

	username := strings.TrimSpace(input.Username)
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" {
		return nil, fmt.Errorf("%w: username required", common.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name required", common.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email required", common.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password required", common.ErrValidation)
	}
	if input.Password != input.PasswordConfirmation {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	if exists, err := s.repo.ExistsByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	} else if exists {
		return nil, fmt.Errorf("%w: username already in use", common.ErrAlreadyExists)
	}
	if exists, err := s.repo.ExistsByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	} else if exists {
		return nil, fmt.Errorf("%w: email already in use", common.ErrAlreadyExists)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: username or email already in use", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login resolves the identifier (email when it contains "@", username
// otherwise), verifies the password, and issues a signed token. Unknown
// identifiers and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, identifier, password string) (*User, string, error) {

	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", common.ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", common.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user, token, nil
}

// GetByID resolves a principal by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) findByIdentifier(ctx context.Context, identifier string) (*User, error) {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return s.repo.GetByEmail(ctx, strings.ToLower(identifier))
	}
	return s.repo.GetByUsername(ctx, identifier)
}
