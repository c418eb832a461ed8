package factory

import (
	"log/slog"

	"github.com/statboard/statboard/internal/services/leaderboard"
	"github.com/statboard/statboard/internal/services/profile"
	"github.com/statboard/statboard/internal/storage/memory"
)

// TestApp extends App with test-specific handles
type TestApp struct {
	*App

	// Memory store for direct inspection
	Store *memory.Storage
}

// NewTestApp creates an App backed by in-memory storage with an injected
// lookup and source, for tests that need full wiring without the network
func NewTestApp(lookup profile.Lookup, src leaderboard.Source, logger *slog.Logger) *TestApp {
	store := memory.New()
	app := newWithDependencies(store, lookup, src, profile.DefaultConfig(), logger)

	return &TestApp{
		App:   app,
		Store: store,
	}
}
