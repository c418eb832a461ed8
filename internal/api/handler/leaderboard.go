package handler

import (
	"fmt"
	"net/http"

	"github.com/statboard/statboard/internal/api/response"
	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	controller *leaderboard.Controller
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(controller *leaderboard.Controller) *LeaderboardHandler {
	return &LeaderboardHandler{
		controller: controller,
	}
}

// Get handles GET /api/v1/leaderboard?sort=<key>
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := model.SortByPlayTime
	if raw := r.URL.Query().Get("sort"); raw != "" {
		parsed, ok := model.ParseSortKey(raw)
		if !ok {
			WriteError(w, NewInvalidRequestError(fmt.Sprintf("unknown sort key %q", raw)))
			return
		}
		key = parsed
	}

	rows, err := h.controller.Build(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardResponseFrom(key, leaderboard.Display(rows)))
}
