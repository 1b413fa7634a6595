package handler

import (
	"net/http"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/honey"
)

type HarvestRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	HiveID   string `json:"hive_id" validate:"required,max=64"`
	Amount   int    `json:"amount" validate:"min=0,max=1000"`
}

// HandleHarvest handles hive harvest requests.
func HandleHarvest(svc honey.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HarvestRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestHarvest(r.Context(), req.PlayerID, req.HiveID, req.Amount)
		respondResult(w, res)
	}
}

type AddHiveRequest struct {
	HiveID string  `json:"hive_id" validate:"required,max=64"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

// HandleAddHive registers a hive in the world (admin/world setup).
func HandleAddHive(svc honey.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddHiveRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		if err := svc.AddHive(r.Context(), req.HiveID, domain.Position{X: req.X, Y: req.Y, Z: req.Z}); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Hive registered"})
	}
}
