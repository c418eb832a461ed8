package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/statboard/statboard/internal/api/apierr"
	"github.com/statboard/statboard/internal/api/handler"
	"github.com/statboard/statboard/internal/api/middleware"
	"github.com/statboard/statboard/internal/services/leaderboard"
	"github.com/statboard/statboard/internal/services/profile"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger                *slog.Logger
	LeaderboardController *leaderboard.Controller
	ProfileService        *profile.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardController)
	playerHandler := handler.NewPlayerHandler(cfg.ProfileService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.RequestID())
	api.Use(middleware.Logging(cfg.Logger))

	// Leaderboard routes
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Player identity routes
	api.HandleFunc("/players/{uuid}/name", playerHandler.GetName).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
