package honey

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/event"
	"github.com/skunkedgame/skunkd/internal/logger"
	"github.com/skunkedgame/skunkd/internal/metrics"
)

// rangeTolerance pads the interact range so a player standing right at the
// edge is not rejected by floating point jitter.
const rangeTolerance = 0.25

// Config carries the hive tunables.
type Config struct {
	InteractRange   float64
	HarvestCooldown time.Duration
	PerUseCap       int
	RegenPerSecond  float64
	MaxStock        int
	ItemName        string
	ResourceType    domain.ResourceType
}

// PlayerLocator resolves a player's current world position. Implemented by
// the inventory session registry.
type PlayerLocator interface {
	PlayerPosition(playerID string) (domain.Position, bool)
}

// PickupSpawner creates world pickups for granted honey.
type PickupSpawner interface {
	Spawn(item domain.ItemStack, pos domain.Position) domain.Pickup
}

// Service owns the authoritative state of every hive and validates harvest
// requests against range, cooldown and stock.
type Service interface {
	// AddHive registers a hive at a world position. Stock starts full.
	AddHive(ctx context.Context, hiveID string, pos domain.Position) error

	// RequestHarvest grants min(desired, per-use cap, stock) honey to the
	// player as a world pickup at the player's position.
	RequestHarvest(ctx context.Context, playerID, hiveID string, desiredAmount int) domain.Result

	// Tick advances regeneration by the given delta. Fractional regen
	// carries across ticks; whole units move into stock.
	Tick(dt time.Duration)

	// Run drives Tick from a wall-clock ticker until the context ends.
	Run(ctx context.Context, interval time.Duration)

	// Stock reports a hive's current stock.
	Stock(hiveID string) (int, error)
}

type service struct {
	mu      sync.Mutex
	cfg     Config
	hives   map[string]*domain.HoneySource
	players PlayerLocator
	spawner PickupSpawner
	bus     event.Bus
	now     func() time.Time
}

// NewService creates the hive service.
func NewService(cfg Config, players PlayerLocator, spawner PickupSpawner, bus event.Bus, opts ...Option) Service {
	s := &service{
		cfg:     cfg,
		hives:   make(map[string]*domain.HoneySource),
		players: players,
		spawner: spawner,
		bus:     bus,
		now:     time.Now,
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

func (s *service) AddHive(ctx context.Context, hiveID string, pos domain.Position) error {
	if hiveID == "" {
		return fmt.Errorf("%w: empty hive id", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.hives[hiveID]; exists {
		return nil
	}
	s.hives[hiveID] = &domain.HoneySource{
		ID:             hiveID,
		Pos:            pos,
		CurrentStock:   s.cfg.MaxStock,
		MaxStock:       s.cfg.MaxStock,
		RegenPerSecond: s.cfg.RegenPerSecond,
		RegenEnabled:   s.cfg.RegenPerSecond > 0,
	}
	logger.FromContext(ctx).Info("Hive registered", "hiveID", hiveID, "stock", s.cfg.MaxStock)
	return nil
}

func (s *service) RequestHarvest(ctx context.Context, playerID, hiveID string, desiredAmount int) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestHarvest called", "playerID", playerID, "hiveID", hiveID, "desired", desiredAmount)

	res := s.harvest(ctx, playerID, hiveID, desiredAmount)
	metrics.ObserveRequest("harvest", res)
	if !res.Accepted {
		log.Debug("Harvest rejected", "playerID", playerID, "hiveID", hiveID, "reason", res.Reason)
	}
	return res
}

func (s *service) harvest(ctx context.Context, playerID, hiveID string, desiredAmount int) domain.Result {
	if desiredAmount <= 0 {
		desiredAmount = 1
	}

	playerPos, ok := s.players.PlayerPosition(playerID)
	if !ok {
		return domain.Reject(domain.RejectUnknownPlayer)
	}

	s.mu.Lock()
	hive, ok := s.hives[hiveID]
	if !ok {
		s.mu.Unlock()
		return domain.Reject(domain.RejectInvalidRequest)
	}

	now := s.now()
	if now.Before(hive.CooldownUntil) {
		s.mu.Unlock()
		return domain.Reject(domain.RejectOnCooldown)
	}
	if playerPos.DistanceTo(hive.Pos) > s.cfg.InteractRange+rangeTolerance {
		s.mu.Unlock()
		return domain.Reject(domain.RejectOutOfRange)
	}
	if hive.CurrentStock <= 0 {
		s.mu.Unlock()
		return domain.Reject(domain.RejectNoStock)
	}

	granted := min(desiredAmount, s.cfg.PerUseCap)
	granted = min(granted, hive.CurrentStock)
	hive.CurrentStock -= granted
	hive.CooldownUntil = now.Add(s.cfg.HarvestCooldown)
	remaining := hive.CurrentStock
	s.mu.Unlock()

	s.spawner.Spawn(domain.NewResourceStack(s.cfg.ItemName, s.cfg.ResourceType, granted), playerPos)
	metrics.HoneyHarvested.Add(float64(granted))

	// Theft notification for nearby aggression controllers. Fire and
	// forget; a failing subscriber does not affect the harvest.
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewHoneyHarvestedEvent(hiveID, playerID, granted, remaining)); err != nil {
			logger.FromContext(ctx).Warn("Harvest event publish failed", "error", err)
		}
	}

	logger.FromContext(ctx).Info("Harvest granted", "playerID", playerID, "hiveID", hiveID, "amount", granted, "remaining", remaining)
	return domain.AcceptPlaced(granted)
}

// Tick accumulates fractional regeneration and transfers whole units into
// stock, clamping at the maximum.
func (s *service) Tick(dt time.Duration) {
	seconds := dt.Seconds()
	if seconds <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, hive := range s.hives {
		if !hive.RegenEnabled || hive.CurrentStock >= hive.MaxStock {
			continue
		}
		hive.RegenAccumulator += hive.RegenPerSecond * seconds
		whole := int(hive.RegenAccumulator)
		if whole == 0 {
			continue
		}
		hive.RegenAccumulator -= float64(whole)
		hive.CurrentStock += whole
		if hive.CurrentStock > hive.MaxStock {
			hive.CurrentStock = hive.MaxStock
			hive.RegenAccumulator = 0
		}
		metrics.HoneyStock.WithLabelValues(hive.ID).Set(float64(hive.CurrentStock))
	}
}

// Run drives regeneration from a wall-clock ticker until ctx is done.
func (s *service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := s.now()
			s.Tick(now.Sub(last))
			last = now
		}
	}
}

func (s *service) Stock(hiveID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hive, ok := s.hives[hiveID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrHiveNotFound, hiveID)
	}
	return hive.CurrentStock, nil
}
