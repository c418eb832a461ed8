package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/storage"
)

// Storage is a Redis-backed implementation of the profile store
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.ProfileStore = (*Storage)(nil)

func (s *Storage) GetProfile(ctx context.Context, uuid string) (*model.CachedProfile, error) {
	data, err := s.client.Get(ctx, profileKey(uuid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var profile model.CachedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) SaveProfile(ctx context.Context, profile *model.CachedProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, profileKey(profile.UUID), data, s.cfg.ProfileTTL).Err()
}

func (s *Storage) DeleteProfile(ctx context.Context, uuid string) error {
	return s.client.Del(ctx, profileKey(uuid)).Err()
}
