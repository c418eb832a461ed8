package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/storage"
)

// Cache wraps a profile store with degrade-to-miss semantics: a broken or
// unavailable store behaves like an empty cache. None of the methods
// return an error.
type Cache struct {
	store  storage.ProfileStore
	logger *slog.Logger
}

// NewCache creates a cache over the given store
func NewCache(store storage.ProfileStore, logger *slog.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logger,
	}
}

// Get returns the cached profile for a canonical UUID, or nil on a miss.
// Storage failures and malformed entries are misses, not errors.
func (c *Cache) Get(ctx context.Context, uuid string) *model.CachedProfile {
	profile, err := c.store.GetProfile(ctx, uuid)
	if err != nil {
		if !errors.Is(err, model.ErrProfileNotFound) {
			c.logger.Debug("profile cache read failed, treating as miss",
				slog.String("uuid", uuid),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	return profile
}

// SetName upserts the display name for a UUID, preserving a previously
// cached skin URL. Write failures are swallowed.
func (c *Cache) SetName(ctx context.Context, uuid, name string) {
	updated := &model.CachedProfile{UUID: uuid, Name: name}
	if existing := c.Get(ctx, uuid); existing != nil {
		updated.SkinURL = existing.SkinURL
	}
	c.put(ctx, updated)
}

// SetProfile upserts a full profile, overwriting both name and skin URL.
// Write failures are swallowed.
func (c *Cache) SetProfile(ctx context.Context, profile *model.CachedProfile) {
	c.put(ctx, profile)
}

func (c *Cache) put(ctx context.Context, profile *model.CachedProfile) {
	if err := c.store.SaveProfile(ctx, profile); err != nil {
		c.logger.Debug("profile cache write failed, entry dropped",
			slog.String("uuid", profile.UUID),
			slog.String("error", err.Error()),
		)
	}
}
