package favorites

import "context"

// InsertOutcome tags the result of an insert attempt so the service can
// recover from a lost uniqueness race without parsing storage errors.
type InsertOutcome int

const (
	// Inserted means a new row was created.
	Inserted InsertOutcome = iota
	// Conflict means a row for (UserID, VolumeID) already existed.
	Conflict
)

// Repository persists favorite records.
type Repository interface {
	// Insert attempts to create the record. A uniqueness violation on
	// (UserID, VolumeID) yields (Conflict, nil); any other storage
	// failure is returned as an error.
	Insert(ctx context.Context, fav *Favorite) (InsertOutcome, error)

	// GetByUserAndVolume returns common.ErrNotFound when no row matches.
	GetByUserAndVolume(ctx context.Context, userID int64, volumeID string) (*Favorite, error)

	// ListByUser returns the user's favorites, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]*Favorite, error)

	// Delete removes the pair unconditionally; zero matching rows is not
	// an error.
	Delete(ctx context.Context, userID int64, volumeID string) error
}
