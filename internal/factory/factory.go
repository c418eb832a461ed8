package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/statboard/statboard/internal/config"
	"github.com/statboard/statboard/internal/mojang"
	"github.com/statboard/statboard/internal/services/leaderboard"
	"github.com/statboard/statboard/internal/services/profile"
	"github.com/statboard/statboard/internal/services/stats"
	"github.com/statboard/statboard/internal/source"
	"github.com/statboard/statboard/internal/storage"
	"github.com/statboard/statboard/internal/storage/memory"
	redisstorage "github.com/statboard/statboard/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.ProfileStore

	// External clients
	Mojang *mojang.Client

	// Services
	StatsService          *stats.Service
	ProfileService        *profile.Service
	LeaderboardController *leaderboard.Controller
}

// New creates a new application with all dependencies wired from config
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	// Use no-op logger if not provided
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.ProfileStore
	switch cfg.Storage.Type {
	case StorageTypeMemory, "":
		store = memory.New()
	case StorageTypeRedis:
		redisStore, err := redisstorage.New(redisstorage.Config{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			ProfileTTL:   cfg.Redis.ProfileTTL,
		})
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid storage type: must be 'memory' or 'redis'")
	}

	lookup := mojang.NewClient(mojang.Config{
		BaseURL:    cfg.Mojang.BaseURL,
		SessionURL: cfg.Mojang.SessionURL,
		Timeout:    cfg.Mojang.Timeout,
		UserAgent:  cfg.Mojang.UserAgent,
	})

	src := source.NewDir(cfg.Stats.Dir, logger)

	app := newWithDependencies(store, lookup, src, profile.Config{
		Concurrency: cfg.Resolver.Concurrency,
	}, logger)
	app.Mojang = lookup
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.ProfileStore,
	lookup profile.Lookup,
	src leaderboard.Source,
	profileCfg profile.Config,
	logger *slog.Logger,
) *App {
	statsService := stats.New(nil)
	cache := profile.NewCache(store, logger)
	profileService := profile.New(lookup, cache, profileCfg, logger)
	leaderboardController := leaderboard.NewController(src, statsService, profileService, logger)

	return &App{
		Storage:               store,
		StatsService:          statsService,
		ProfileService:        profileService,
		LeaderboardController: leaderboardController,
	}
}
