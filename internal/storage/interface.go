package storage

import (
	"context"

	"github.com/statboard/statboard/internal/model"
)

// ProfileStore defines the interface for persisting resolved profiles
type ProfileStore interface {
	// GetProfile returns the stored profile for a canonical UUID, or
	// model.ErrProfileNotFound on a miss
	GetProfile(ctx context.Context, uuid string) (*model.CachedProfile, error)

	// SaveProfile upserts a profile keyed by its canonical UUID
	SaveProfile(ctx context.Context, profile *model.CachedProfile) error

	// DeleteProfile removes a stored profile; deleting a missing profile
	// is not an error
	DeleteProfile(ctx context.Context, uuid string) error

	// Close releases any underlying resources
	Close() error
}
