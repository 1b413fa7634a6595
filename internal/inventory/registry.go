package inventory

import (
	"sync"
	"time"

	"github.com/skunkedgame/skunkd/internal/domain"
)

// session is the authoritative per-player state: the inventory plus the
// request-pipeline bookkeeping (spam gate timestamp, last accepted sequence
// number, world position). Sessions live for the duration of a player
// connection; nothing persists.
type session struct {
	inv *domain.Inventory
	pos domain.Position

	// lastAccepted feeds the rpc spam gate: a mutating request arriving
	// within the cooldown window of the previously accepted one is
	// silently dropped.
	lastAccepted time.Time

	// lastSeq is the highest accepted sequence number for idempotent
	// requests. Sequence 0 opts out of tracking.
	lastSeq uint64
}

// registry holds live sessions keyed by player ID.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session)}
}

func (r *registry) create(playerID string, slotCount int) *session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[playerID]; ok {
		return existing
	}
	s := &session{inv: domain.NewInventory(playerID, slotCount)}
	r.sessions[playerID] = s
	return s
}

func (r *registry) get(playerID string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[playerID]
	return s, ok
}

func (r *registry) remove(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[playerID]; !ok {
		return false
	}
	delete(r.sessions, playerID)
	return true
}
