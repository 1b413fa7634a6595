package handler

import (
	"net/http"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/inventory"
)

type RegisterPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

// HandleRegisterPlayer creates a player session and its authoritative
// inventory. Registering an existing player is a no-op.
func HandleRegisterPlayer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		if err := svc.CreateSession(r.Context(), req.PlayerID); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Player registered"})
	}
}

type PositionRequest struct {
	PlayerID string  `json:"player_id" validate:"required,max=64"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
}

// HandleSetPosition updates a player's world position, the input to the
// pickup and harvest range checks.
func HandleSetPosition(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PositionRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		if err := svc.SetPlayerPosition(r.Context(), req.PlayerID, domain.Position{X: req.X, Y: req.Y, Z: req.Z}); err != nil {
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Position updated"})
	}
}
