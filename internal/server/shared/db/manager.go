package db

import (
	"context"
	"database/sql"

	"github.com/hallowedlibrary/backend/internal/server/favorites"
	"github.com/hallowedlibrary/backend/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Favorites() favorites.Repository
	Close() error
}
