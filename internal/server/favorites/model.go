package favorites

import "time"

// Favorite is a (user, catalog volume) pairing with denormalized display
// metadata. At most one row exists per (UserID, VolumeID); the storage
// unique constraint is the only synchronization between concurrent adds.
type Favorite struct {
	ID        int64
	UserID    int64
	VolumeID  string
	Title     string
	Miniature string
	Authors   []string
	CreatedAt time.Time
}
