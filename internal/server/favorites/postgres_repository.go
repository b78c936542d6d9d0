package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hallowedlibrary/backend/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, fav *Favorite) (InsertOutcome, error) {

	query :=
		`INSERT INTO favorites (user_id, volume_id, title, miniature, authors_text)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		fav.UserID, fav.VolumeID, fav.Title, fav.Miniature, joinAuthors(fav.Authors)).
		Scan(&fav.ID, &fav.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Conflict, nil
		}
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return Inserted, nil
}

func (r *PostgresRepository) GetByUserAndVolume(ctx context.Context, userID int64, volumeID string) (*Favorite, error) {
	query :=
		`SELECT id, user_id, volume_id, title, miniature, authors_text, created_at
		 FROM favorites
		 WHERE user_id = $1 AND volume_id = $2
		 `

	fav := &Favorite{}
	var authorsText sql.NullString

	err := r.db.QueryRowContext(ctx, query, userID, volumeID).
		Scan(&fav.ID, &fav.UserID, &fav.VolumeID, &fav.Title, &fav.Miniature, &authorsText, &fav.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	fav.Authors = splitAuthors(authorsText)
	return fav, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*Favorite, error) {
	query :=
		`SELECT id, user_id, volume_id, title, miniature, authors_text, created_at
		 FROM favorites
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*Favorite{}
	for rows.Next() {
		fav := &Favorite{}
		var authorsText sql.NullString
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.VolumeID, &fav.Title,
			&fav.Miniature, &authorsText, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		fav.Authors = splitAuthors(authorsText)
		result = append(result, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID int64, volumeID string) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND volume_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, volumeID); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// The authors list is denormalized into a single pipe-separated column.
func joinAuthors(authors []string) sql.NullString {
	if len(authors) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(authors, "|"), Valid: true}
}

func splitAuthors(text sql.NullString) []string {
	if !text.Valid || text.String == "" {
		return []string{}
	}
	return strings.Split(text.String, "|")
}
