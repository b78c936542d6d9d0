package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hallowedlibrary/backend/internal/common"
	"github.com/hallowedlibrary/backend/internal/server/auth"
)

func newTestService() (*Service, *auth.TokenService) {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	svc := NewService(NewInMemoryRepository(), auth.NewPasswordHasher(bcrypt.MinCost), tokens)
	return svc, tokens
}

func validInput() RegisterInput {
	return RegisterInput{
		Username:             "alice",
		Name:                 "Alice Doe",
		Email:                "Alice@Example.com",
		Password:             "s3cret",
		PasswordConfirmation: "s3cret",
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	user, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized to lowercase")
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing username", func(in *RegisterInput) { in.Username = "  " }},
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"missing password", func(in *RegisterInput) { in.Password = ""; in.PasswordConfirmation = "" }},
		{"mismatched confirmation", func(in *RegisterInput) { in.PasswordConfirmation = "other" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	second := validInput()
	second.Email = "other@example.com"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	// No second account was created under that username.
	u, err := svc.repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	second := validInput()
	second.Username = "bob"
	_, err = svc.Register(context.Background(), second)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestLogin_ByUsername(t *testing.T) {
	t.Parallel()

	svc, tokens := newTestService()

	created, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject)
}

func TestLogin_ByEmailCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	// Account created with a mixed-case email address.
	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	user, _, err := svc.Login(context.Background(), "ALICE@example.COM", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice", "not-the-password")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
