package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/statboard/statboard/internal/api/response"
	"github.com/statboard/statboard/internal/mcuuid"
	"github.com/statboard/statboard/internal/model"
	"github.com/statboard/statboard/internal/services/profile"
)

// PlayerHandler handles player identity endpoints
type PlayerHandler struct {
	profiles *profile.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(profiles *profile.Service) *PlayerHandler {
	return &PlayerHandler{
		profiles: profiles,
	}
}

// GetName handles GET /api/v1/players/{uuid}/name
func (h *PlayerHandler) GetName(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["uuid"]

	uuid := mcuuid.Normalize(raw)
	if !mcuuid.IsCanonical(uuid) {
		WriteError(w, model.ErrInvalidUUID)
		return
	}

	resolved, err := h.profiles.Resolve(r.Context(), uuid)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerNameResponse{
		UUID:    resolved.UUID,
		Name:    resolved.Name,
		SkinURL: resolved.SkinURL,
	})
}
