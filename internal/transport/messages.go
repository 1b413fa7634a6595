package transport

import "github.com/skunkedgame/skunkd/internal/domain"

// Client frame types. Each websocket frame is one discrete request intent.
// The server never answers a rejection; the client only ever observes
// inventory snapshots.
const (
	MsgPickup   = "pickup"
	MsgMove     = "move_stack"
	MsgUse      = "use_slot"
	MsgDrop     = "drop"
	MsgCraft    = "craft"
	MsgHarvest  = "harvest"
	MsgPosition = "position"
)

// Server frame types.
const (
	MsgInventory = "inventory"
)

// ClientMessage is the envelope for every client request frame. Fields are
// populated per type; unused fields stay zero.
type ClientMessage struct {
	Type string `json:"type"`

	// pickup
	PickupID string `json:"pickup_id,omitempty"`

	// move_stack / use_slot
	From   int    `json:"from,omitempty"`
	To     int    `json:"to,omitempty"`
	Slot   int    `json:"slot,omitempty"`
	Amount int    `json:"amount,omitempty"`
	Seq    uint64 `json:"seq,omitempty"`

	// drop
	ItemName string `json:"item_name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`

	// craft
	Recipe string `json:"recipe,omitempty"`

	// harvest
	HiveID string `json:"hive_id,omitempty"`

	// position
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z,omitempty"`
}

// InventoryMessage pushes the full read-only snapshot of the owning
// player's inventory.
type InventoryMessage struct {
	Type       string        `json:"type"`
	ServerTime int64         `json:"server_time"`
	Slots      []domain.Slot `json:"slots"`
}
