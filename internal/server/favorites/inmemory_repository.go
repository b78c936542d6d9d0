package favorites

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hallowedlibrary/backend/internal/common"
)

type pairKey struct {
	userID   int64
	volumeID string
}

// InMemoryRepository is a map-backed store used in tests. The mutex plays
// the role of the database unique index: an insert that loses the race
// reports Conflict, exactly like the Postgres implementation.
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	byPair map[pairKey]*Favorite
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byPair: make(map[pairKey]*Favorite)}
}

func (r *InMemoryRepository) Insert(ctx context.Context, fav *Favorite) (InsertOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{userID: fav.UserID, volumeID: fav.VolumeID}
	if _, ok := r.byPair[key]; ok {
		return Conflict, nil
	}

	r.nextID++
	stored := *fav
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.Authors = append([]string{}, fav.Authors...)
	r.byPair[key] = &stored

	fav.ID = stored.ID
	fav.CreatedAt = stored.CreatedAt
	return Inserted, nil
}

func (r *InMemoryRepository) GetByUserAndVolume(ctx context.Context, userID int64, volumeID string) (*Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fav, ok := r.byPair[pairKey{userID: userID, volumeID: volumeID}]; ok {
		result := *fav
		result.Authors = append([]string{}, fav.Authors...)
		return &result, nil
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int64) ([]*Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*Favorite{}
	for _, fav := range r.byPair {
		if fav.UserID == userID {
			item := *fav
			item.Authors = append([]string{}, fav.Authors...)
			result = append(result, &item)
		}
	}

	// Most recent first; fall back to id for equal timestamps.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID int64, volumeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byPair, pairKey{userID: userID, volumeID: volumeID})
	return nil
}

// Len reports the number of stored records; used by tests.
func (r *InMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byPair)
}
