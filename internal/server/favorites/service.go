package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/hallowedlibrary/backend/internal/common"
	"github.com/hallowedlibrary/backend/internal/server/users"
)

// AddInput carries the catalog metadata denormalized onto a new favorite.
type AddInput struct {
	VolumeID  string
	Title     string
	Miniature string
	Authors   []string
}

// Service implements idempotent, race-safe favorite registration on top of
// the storage uniqueness constraint.
type Service struct {
	repo  Repository
	users users.Repository
}

func NewService(repo Repository, userRepo users.Repository) *Service {
	return &Service{repo: repo, users: userRepo}
}

// Add registers (userID, volumeID) as a favorite. The call is a no-op
// success when the pair already exists, and when a concurrent add wins the
// race between the existence check and the insert, the now-existing row is
// re-read and returned. Callers never see a conflict error; which caller
// "created" the row is unspecified.
func (s *Service) Add(ctx context.Context, userID int64, input AddInput) (*Favorite, error) {

	if input.VolumeID == "" {
		return nil, fmt.Errorf("%w: volumeId required", common.ErrValidation)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", common.ErrNotFound)
		}
		return nil, fmt.Errorf("error resolving user: %w", err)
	}

	existing, err := s.repo.GetByUserAndVolume(ctx, userID, input.VolumeID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error checking favorite: %w", err)
	}

	fav := &Favorite{
		UserID:    userID,
		VolumeID:  input.VolumeID,
		Title:     input.Title,
		Miniature: input.Miniature,
		Authors:   input.Authors,
	}

	outcome, err := s.repo.Insert(ctx, fav)
	if err != nil {
		return nil, fmt.Errorf("error creating favorite: %w", err)
	}

	if outcome == Conflict {
		// A concurrent request won the race; its row is the record.
		recovered, err := s.repo.GetByUserAndVolume(ctx, userID, input.VolumeID)
		if err != nil {
			return nil, fmt.Errorf("error recovering favorite after conflict: %w", err)
		}
		return recovered, nil
	}

	return fav, nil
}

// Remove deletes the pair unconditionally. Removing a favorite that does
// not exist succeeds and leaves the store unchanged.
func (s *Service) Remove(ctx context.Context, userID int64, volumeID string) error {
	return s.repo.Delete(ctx, userID, volumeID)
}

// List returns the user's favorites, most recent first.
func (s *Service) List(ctx context.Context, userID int64) ([]*Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}
