// Package profile resolves player UUIDs to display names and skins,
// caching results so each player is looked up at most once per cache
// lifetime.
package profile

import (
	"context"
	"log/slog"

	"github.com/statboard/statboard/internal/batch"
	"github.com/statboard/statboard/internal/model"
)

// Lookup is the remote side of profile resolution
type Lookup interface {
	// LookupProfile resolves a canonical UUID to a name and optional
	// skin URL
	LookupProfile(ctx context.Context, uuid string) (*model.CachedProfile, error)
}

// Config holds configuration for the profile service
type Config struct {
	// Concurrency caps how many remote lookups run at once during
	// batch resolution
	Concurrency int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Concurrency: 4,
	}
}

// Service resolves profiles through the cache, falling back to the
// remote lookup on a miss
type Service struct {
	lookup Lookup
	cache  *Cache
	cfg    Config
	logger *slog.Logger
}

// New creates a new profile Service
func New(lookup Lookup, cache *Cache, cfg Config, logger *slog.Logger) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	return &Service{
		lookup: lookup,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

// Resolve returns the profile for a canonical UUID: cache hit if present,
// otherwise a remote lookup whose result is written back to the cache.
// Remote failure surfaces to the caller and nothing is cached.
func (s *Service) Resolve(ctx context.Context, uuid string) (*model.CachedProfile, error) {
	if cached := s.cache.Get(ctx, uuid); cached != nil {
		return cached, nil
	}

	profile, err := s.lookup.LookupProfile(ctx, uuid)
	if err != nil {
		return nil, err
	}

	s.cache.SetProfile(ctx, profile)
	return profile, nil
}

// ResolveNames maps each UUID to a display name with bounded-concurrency
// remote lookups. A player whose lookup fails keeps the raw UUID as
// display text; the batch itself only fails on context cancellation.
// Results align index-for-index with uuids.
func (s *Service) ResolveNames(ctx context.Context, uuids []string) ([]string, error) {
	return batch.Map(ctx, uuids, s.cfg.Concurrency, func(ctx context.Context, uuid string) (string, error) {
		profile, err := s.Resolve(ctx, uuid)
		if err != nil {
			if ctx.Err() != nil {
				return "", err
			}
			s.logger.Warn("name resolution failed, falling back to uuid",
				slog.String("uuid", uuid),
				slog.String("error", err.Error()),
			)
			return uuid, nil
		}
		return profile.Name, nil
	})
}

// Cache exposes the underlying cache for direct upserts
func (s *Service) Cache() *Cache {
	return s.cache
}
