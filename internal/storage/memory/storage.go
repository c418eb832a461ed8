package memory

import (
	"context"
	"sync"

	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/storage"
)

// Storage is an in-memory implementation of the profile store
type Storage struct {
	mu       sync.RWMutex
	profiles map[string]*model.CachedProfile
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles: make(map[string]*model.CachedProfile),
	}
}

// Ensure Storage implements the interface
var _ storage.ProfileStore = (*Storage)(nil)

func (s *Storage) GetProfile(ctx context.Context, uuid string) (*model.CachedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[uuid]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	// Copy so callers cannot mutate the stored record
	out := *profile
	return &out, nil
}

func (s *Storage) SaveProfile(ctx context.Context, profile *model.CachedProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *profile
	s.profiles[profile.UUID] = &stored
	return nil
}

func (s *Storage) DeleteProfile(ctx context.Context, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, uuid)
	return nil
}

func (s *Storage) Close() error {
	return nil
}
