package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hallowedlibrary/backend/internal/common"
)

// InMemoryRepository is a map-backed identity store used in tests. It
// enforces the same username/email uniqueness the database schema does.
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[int64]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return nil, common.ErrAlreadyExists
		}
	}

	r.nextID++
	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byID[id]; ok {
		result := *u
		return &result, nil
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == email {
			result := *u
			return &result, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *InMemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}
