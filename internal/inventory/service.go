package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/skunkedgame/skunkd/internal/concurrency"
	"github.com/skunkedgame/skunkd/internal/cooldown"
	"github.com/skunkedgame/skunkd/internal/crafting"
	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/event"
	"github.com/skunkedgame/skunkd/internal/item"
	"github.com/skunkedgame/skunkd/internal/logger"
	"github.com/skunkedgame/skunkd/internal/metrics"
)

// Config carries the static gameplay tunables for the request pipeline.
type Config struct {
	MaxSlots        int
	MaxStackSize    int
	PickupRange     float64
	RPCSpamCooldown time.Duration
}

// Service is the server-side request validator and mutator. Every mutating
// operation is a run-to-completion transaction against one inventory,
// executed under that inventory's lock; failures are silent toward the
// client and surface only through the returned Result.
type Service interface {
	CreateSession(ctx context.Context, playerID string) error
	RemoveSession(ctx context.Context, playerID string)
	SetPlayerPosition(ctx context.Context, playerID string, pos domain.Position) error
	PlayerPosition(playerID string) (domain.Position, bool)

	Snapshot(ctx context.Context, playerID string) ([]domain.Slot, error)
	GetSlotCount(playerID string) (int, error)
	GetSlot(playerID string, index int) (domain.Slot, error)

	RequestPickup(ctx context.Context, playerID, pickupID string) domain.Result
	RequestAddResource(ctx context.Context, playerID, name string, rt domain.ResourceType, quantity int) domain.Result
	RequestAddWeapon(ctx context.Context, playerID, name string, wt domain.WeaponType, damage, maxDurability int) domain.Result
	RequestAddKeyItem(ctx context.Context, playerID, name, keyID string, questItem bool) domain.Result
	RequestMoveStack(ctx context.Context, playerID string, from, to, amount int, seq uint64) domain.Result
	RequestUseSlot(ctx context.Context, playerID string, slot, amount int, seq uint64) domain.Result
	RequestDrop(ctx context.Context, playerID, itemName string, quantity int) domain.Result
	RequestCraftByName(ctx context.Context, playerID, recipeName string) domain.Result

	SetReplicator(rep Replicator)
}

type service struct {
	cfg       Config
	items     *item.Catalog
	recipes   *crafting.Catalog
	world     WorldPickups
	cooldowns cooldown.Service
	bus       event.Bus
	locks     *concurrency.LockManager
	sessions  *registry
	rep       Replicator
	now       func() time.Time
}

// NewService creates the inventory request pipeline. Catalogs are immutable
// and injected; the world, cooldown service and event bus are collaborators
// the pipeline calls into.
func NewService(cfg Config, items *item.Catalog, recipes *crafting.Catalog, world WorldPickups, cooldowns cooldown.Service, bus event.Bus, opts ...Option) Service {
	if cfg.MaxSlots <= 0 {
		cfg.MaxSlots = domain.DefaultSlotCount
	}
	if cfg.MaxStackSize <= 0 {
		cfg.MaxStackSize = domain.DefaultMaxStackSize
	}
	s := &service{
		cfg:       cfg,
		items:     items,
		recipes:   recipes,
		world:     world,
		cooldowns: cooldowns,
		bus:       bus,
		locks:     concurrency.NewLockManager(),
		sessions:  newRegistry(),
		rep:       NopReplicator{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures the service.
type Option func(*service)

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithReplicator sets the snapshot replicator at construction.
func WithReplicator(rep Replicator) Option {
	return func(s *service) { s.rep = rep }
}

func (s *service) SetReplicator(rep Replicator) {
	if rep == nil {
		rep = NopReplicator{}
	}
	s.rep = rep
}

// CreateSession creates the authoritative inventory for a player session.
// Creating an existing session is a no-op.
func (s *service) CreateSession(ctx context.Context, playerID string) error {
	if playerID == "" {
		return fmt.Errorf("%w: empty player id", domain.ErrInvalidInput)
	}
	log := logger.FromContext(ctx)
	s.sessions.create(playerID, s.cfg.MaxSlots)
	log.Info("Session created", "playerID", playerID, "slots", s.cfg.MaxSlots)
	return nil
}

// RemoveSession tears down a player's inventory. No persistence: the
// contents are gone with the session. The lock entry stays behind so a
// later session for the same player reuses the same mutex.
func (s *service) RemoveSession(ctx context.Context, playerID string) {
	log := logger.FromContext(ctx)
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	if s.sessions.remove(playerID) {
		log.Info("Session removed", "playerID", playerID)
	}
}

func (s *service) SetPlayerPosition(ctx context.Context, playerID string, pos domain.Position) error {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.sessions.get(playerID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	sess.pos = pos
	return nil
}

func (s *service) PlayerPosition(playerID string) (domain.Position, bool) {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.sessions.get(playerID)
	if !ok {
		return domain.Position{}, false
	}
	return sess.pos, true
}

// Snapshot returns a deep copy of the player's slots.
func (s *service) Snapshot(ctx context.Context, playerID string) ([]domain.Slot, error) {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.sessions.get(playerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return sess.inv.CloneSlots(), nil
}

func (s *service) GetSlotCount(playerID string) (int, error) {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.sessions.get(playerID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return len(sess.inv.Slots), nil
}

func (s *service) GetSlot(playerID string, index int) (domain.Slot, error) {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.sessions.get(playerID)
	if !ok {
		return domain.Slot{}, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	if index < 0 || index >= len(sess.inv.Slots) {
		return domain.Slot{}, fmt.Errorf("%w: %d", domain.ErrSlotOutOfBounds, index)
	}
	return sess.inv.Slots[index], nil
}

// mutate runs one request transaction: resolve the session, hold its lock,
// apply the spam gate, execute fn, and on acceptance stamp the gate and
// replicate the new snapshot. fn runs with exclusive access to the session.
func (s *service) mutate(ctx context.Context, op, playerID string, fn func(*session) domain.Result) domain.Result {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.sessions.get(playerID)
	if !ok {
		res := domain.Reject(domain.RejectUnknownPlayer)
		metrics.ObserveRequest(op, res)
		return res
	}

	now := s.now()
	if s.cfg.RPCSpamCooldown > 0 && !sess.lastAccepted.IsZero() && now.Sub(sess.lastAccepted) < s.cfg.RPCSpamCooldown {
		log.Debug("Request dropped by spam gate", "op", op, "playerID", playerID)
		res := domain.Reject(domain.RejectRateLimited)
		metrics.ObserveRequest(op, res)
		return res
	}

	res := fn(sess)
	metrics.ObserveRequest(op, res)
	if !res.Accepted {
		log.Debug("Request rejected", "op", op, "playerID", playerID, "reason", res.Reason)
		return res
	}

	sess.lastAccepted = now
	if !res.NoOp {
		s.rep.Replicate(playerID, sess.inv.CloneSlots())
	}
	return res
}

// checkSeq applies sequence-number idempotency. Sequence 0 opts out;
// otherwise a sequence at or below the last accepted one marks a duplicate.
func checkSeq(sess *session, seq uint64) bool {
	if seq == 0 {
		return true
	}
	return seq > sess.lastSeq
}

func commitSeq(sess *session, seq uint64) {
	if seq > 0 {
		sess.lastSeq = seq
	}
}
