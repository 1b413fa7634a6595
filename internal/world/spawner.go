package world

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/metrics"
)

// recentDespawnCacheSize bounds the memory spent remembering collected
// pickup IDs. Duplicate pickup requests arrive within network-retry
// timescales, so a small window is plenty.
const recentDespawnCacheSize = 512

// Spawner owns the world-visible pickup entities. It is the authoritative
// registry: pickups appear when items leave an inventory or a resource
// source and despawn once fully collected. Collected IDs are remembered in
// a bounded LRU so redelivered pickup requests can be told apart from
// bogus references.
type Spawner struct {
	mu      sync.RWMutex
	pickups map[string]*domain.Pickup
	recent  *lru.Cache[string, time.Time]
	now     func() time.Time
}

// NewSpawner creates an empty pickup registry.
func NewSpawner() *Spawner {
	recent, _ := lru.New[string, time.Time](recentDespawnCacheSize)
	return &Spawner{
		pickups: make(map[string]*domain.Pickup),
		recent:  recent,
		now:     time.Now,
	}
}

// Spawn creates a pickup carrying the given stack at the given position.
func (sp *Spawner) Spawn(item domain.ItemStack, pos domain.Position) domain.Pickup {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	p := &domain.Pickup{
		ID:        uuid.NewString(),
		Item:      item,
		Pos:       pos,
		SpawnedAt: sp.now(),
	}
	sp.pickups[p.ID] = p
	metrics.PickupsSpawned.Inc()
	return *p
}

// Get returns a copy of the pickup with the given ID.
func (sp *Spawner) Get(pickupID string) (domain.Pickup, bool) {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	p, ok := sp.pickups[pickupID]
	if !ok {
		return domain.Pickup{}, false
	}
	return *p, true
}

// Collect removes quantity units from the pickup, despawning it when the
// remaining quantity reaches zero. Returns false if the pickup is unknown.
func (sp *Spawner) Collect(pickupID string, quantity int) bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	p, ok := sp.pickups[pickupID]
	if !ok {
		return false
	}
	if quantity >= p.Item.Quantity {
		delete(sp.pickups, pickupID)
		sp.recent.Add(pickupID, sp.now())
		metrics.PickupsCollected.Inc()
	} else {
		p.Item.Quantity -= quantity
	}
	return true
}

// Despawn removes a pickup outright (world cleanup).
func (sp *Spawner) Despawn(pickupID string) bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if _, ok := sp.pickups[pickupID]; !ok {
		return false
	}
	delete(sp.pickups, pickupID)
	sp.recent.Add(pickupID, sp.now())
	return true
}

// RecentlyDespawned reports whether the ID belonged to a pickup collected
// recently. Used only to classify stale requests in logs and metrics.
func (sp *Spawner) RecentlyDespawned(pickupID string) bool {
	return sp.recent.Contains(pickupID)
}

// Count returns the number of live pickups.
func (sp *Spawner) Count() int {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return len(sp.pickups)
}

// All returns copies of every live pickup, for the read-only world state
// surface.
func (sp *Spawner) All() []domain.Pickup {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	out := make([]domain.Pickup, 0, len(sp.pickups))
	for _, p := range sp.pickups {
		out = append(out, *p)
	}
	return out
}
