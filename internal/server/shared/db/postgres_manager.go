package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/hallowedlibrary/backend/internal/server/favorites"
	"github.com/hallowedlibrary/backend/internal/server/migrations"
	"github.com/hallowedlibrary/backend/internal/server/users"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	users     users.Repository
	favorites favorites.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Favorites() favorites.Repository {
	return m.favorites
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	userRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	favoriteRepo, err := favorites.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("favorite repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		users:     userRepo,
		favorites: favoriteRepo,
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
