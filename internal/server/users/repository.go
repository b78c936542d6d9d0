package users

import (
	"context"
)

// Repository is the identity store. Lookups return common.ErrNotFound when
// no user matches; Create returns common.ErrAlreadyExists when the
// username or email unique constraint is violated.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
