package handler

import (
	"net/http"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/inventory"
	"github.com/skunkedgame/skunkd/internal/logger"
)

// ResultResponse reports a pipeline outcome to admin/debug callers. The
// player-facing transport never sees rejection reasons; this surface is
// server-side tooling only.
type ResultResponse struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
	Placed  int    `json:"placed,omitempty"`
}

func respondResult(w http.ResponseWriter, res domain.Result) {
	respondJSON(w, http.StatusOK, ResultResponse{
		Applied: res.Accepted,
		Reason:  string(res.Reason),
		Placed:  res.Placed,
	})
}

type AddResourceRequest struct {
	PlayerID     string `json:"player_id" validate:"required,max=64"`
	ItemName     string `json:"item_name" validate:"required,max=32"`
	ResourceType string `json:"resource_type" validate:"required,max=32"`
	Quantity     int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleAddResource handles the admin direct grant of a resource stack.
func HandleAddResource(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddResourceRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestAddResource(r.Context(), req.PlayerID, req.ItemName, domain.ResourceType(req.ResourceType), req.Quantity)
		respondResult(w, res)
	}
}

type AddWeaponRequest struct {
	PlayerID      string `json:"player_id" validate:"required,max=64"`
	ItemName      string `json:"item_name" validate:"required,max=32"`
	WeaponType    string `json:"weapon_type" validate:"required,oneof=tool melee ranged"`
	Damage        int    `json:"damage" validate:"min=0,max=10000"`
	MaxDurability int    `json:"max_durability" validate:"min=1,max=10000"`
}

// HandleAddWeapon handles the admin direct grant of a weapon.
func HandleAddWeapon(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddWeaponRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestAddWeapon(r.Context(), req.PlayerID, req.ItemName, domain.WeaponType(req.WeaponType), req.Damage, req.MaxDurability)
		respondResult(w, res)
	}
}

type AddKeyItemRequest struct {
	PlayerID  string `json:"player_id" validate:"required,max=64"`
	ItemName  string `json:"item_name" validate:"required,max=32"`
	KeyID     string `json:"key_id" validate:"required,max=64"`
	QuestItem bool   `json:"is_quest_item"`
}

// HandleAddKeyItem handles the admin direct grant of a key item.
func HandleAddKeyItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddKeyItemRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestAddKeyItem(r.Context(), req.PlayerID, req.ItemName, req.KeyID, req.QuestItem)
		respondResult(w, res)
	}
}

type MoveStackRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	From     int    `json:"from" validate:"min=0"`
	To       int    `json:"to" validate:"min=0"`
	Amount   int    `json:"amount" validate:"min=0"`
	Seq      uint64 `json:"seq"`
}

// HandleMoveStack handles slot move/merge/swap requests.
func HandleMoveStack(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoveStackRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestMoveStack(r.Context(), req.PlayerID, req.From, req.To, req.Amount, req.Seq)
		respondResult(w, res)
	}
}

type UseSlotRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Slot     int    `json:"slot" validate:"min=0"`
	Amount   int    `json:"amount" validate:"min=0"`
	Seq      uint64 `json:"seq"`
}

// HandleUseSlot handles resource consumption requests.
func HandleUseSlot(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseSlotRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestUseSlot(r.Context(), req.PlayerID, req.Slot, req.Amount, req.Seq)
		respondResult(w, res)
	}
}

type DropRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	ItemName string `json:"item_name" validate:"required,max=32"`
	Quantity int    `json:"quantity" validate:"min=0,max=10000"`
}

// HandleDrop handles drop requests, spawning a world pickup on success.
func HandleDrop(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DropRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestDrop(r.Context(), req.PlayerID, req.ItemName, req.Quantity)
		respondResult(w, res)
	}
}

type CraftRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Recipe   string `json:"recipe" validate:"required,max=64"`
}

// HandleCraft handles craft-by-name requests.
func HandleCraft(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestCraftByName(r.Context(), req.PlayerID, req.Recipe)
		respondResult(w, res)
	}
}

type PickupRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	PickupID string `json:"pickup_id" validate:"required,max=64"`
}

// HandlePickup handles world pickup collection requests.
func HandlePickup(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PickupRequest
		if err := DecodeAndValidateRequest(r, w, &req); err != nil {
			return
		}

		res := svc.RequestPickup(r.Context(), req.PlayerID, req.PickupID)
		respondResult(w, res)
	}
}

// InventoryResponse carries the read-only snapshot of one inventory.
type InventoryResponse struct {
	PlayerID string        `json:"player_id"`
	Slots    []domain.Slot `json:"slots"`
}

// HandleGetInventory returns the replicated snapshot of a player's
// inventory.
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID := r.URL.Query().Get("player_id")
		if playerID == "" {
			respondError(w, http.StatusBadRequest, "missing player_id")
			return
		}

		slots, err := svc.Snapshot(r.Context(), playerID)
		if err != nil {
			log.Warn("Inventory snapshot failed", "playerID", playerID, "error", err)
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{PlayerID: playerID, Slots: slots})
	}
}
