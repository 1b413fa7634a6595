package inventory

import (
	"github.com/skunkedgame/skunkd/internal/domain"
)

// WorldPickups is the slice of the world the request pipeline needs:
// resolving pickup references, collecting from them, and spawning new
// pickups when items leave an inventory.
type WorldPickups interface {
	Get(pickupID string) (domain.Pickup, bool)
	// Collect removes quantity units from the pickup, despawning it when
	// it reaches zero. Returns false if the pickup no longer exists.
	Collect(pickupID string, quantity int) bool
	Spawn(item domain.ItemStack, pos domain.Position) domain.Pickup
	// RecentlyDespawned reports whether the ID belonged to a pickup that
	// was collected a moment ago, distinguishing duplicate delivery from
	// a bogus reference in logs and metrics.
	RecentlyDespawned(pickupID string) bool
}

// Replicator pushes a read-only snapshot of an inventory to its observers
// (the owning client). Called after every accepted mutation; observers must
// never see a half-applied state, so the snapshot is a deep copy taken
// while the inventory lock is held.
type Replicator interface {
	Replicate(playerID string, slots []domain.Slot)
}

// NopReplicator discards snapshots. Used in tests and before a transport
// attaches.
type NopReplicator struct{}

// Replicate implements Replicator.
func (NopReplicator) Replicate(string, []domain.Slot) {}
