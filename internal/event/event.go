package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event types emitted by the inventory and harvest pipelines.
const (
	PickupSpawned   Type = "pickup.spawned"
	PickupCollected Type = "pickup.collected"
	ItemCrafted     Type = "item.crafted"
	ItemUsed        Type = "item.used"
	HoneyHarvested  Type = "honey.harvested"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// PickupSpawnedPayloadV1 is emitted when a world pickup appears.
type PickupSpawnedPayloadV1 struct {
	PickupID  string  `json:"pickup_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Timestamp int64   `json:"timestamp"`
}

// PickupCollectedPayloadV1 is emitted when a player collects a pickup.
type PickupCollectedPayloadV1 struct {
	PickupID  string `json:"pickup_id"`
	PlayerID  string `json:"player_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}

// ItemCraftedPayloadV1 is emitted when a craft request commits.
type ItemCraftedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	RecipeName string `json:"recipe_name"`
	ResultName string `json:"result_name"`
	Quantity   int    `json:"quantity"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemUsedPayloadV1 is emitted when a resource is consumed from a slot.
type ItemUsedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}

// HoneyHarvestedPayloadV1 is emitted when a hive harvest succeeds. Nearby
// aggression controllers subscribe to it; delivery is fire-and-forget and
// carries no return contract.
type HoneyHarvestedPayloadV1 struct {
	HiveID    string `json:"hive_id"`
	PlayerID  string `json:"player_id"`
	Amount    int    `json:"amount"`
	Remaining int    `json:"remaining"`
	Timestamp int64  `json:"timestamp"`
}

// NewHoneyHarvestedEvent builds the theft notification for a hive harvest.
func NewHoneyHarvestedEvent(hiveID, playerID string, amount, remaining int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HoneyHarvested,
		Payload: HoneyHarvestedPayloadV1{
			HiveID:    hiveID,
			PlayerID:  playerID,
			Amount:    amount,
			Remaining: remaining,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously; a failing handler never blocks the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
