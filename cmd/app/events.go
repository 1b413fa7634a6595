package main

import (
	"context"
	"log/slog"

	"github.com/skunkedgame/skunkd/internal/event"
)

// registerEventHandlers wires the process-level subscribers. The only
// built-in consumer is the audit logger; gameplay systems (hive aggression,
// quest tracking) subscribe through the same bus when present.
func registerEventHandlers(bus event.Bus) {
	logEvent := func(ctx context.Context, e event.Event) error {
		slog.Info("Game event", "type", e.Type, "version", e.Version, "payload", e.Payload)
		return nil
	}

	for _, t := range []event.Type{
		event.PickupSpawned,
		event.PickupCollected,
		event.ItemCrafted,
		event.ItemUsed,
		event.HoneyHarvested,
	} {
		bus.Subscribe(t, logEvent)
	}

	slog.Info("Event handlers registered")
}
