package cooldown

import (
	"fmt"
	"sync"
	"time"
)

// Service manages action cooldowns keyed by owner and action. The inventory
// pipeline uses it for the per-inventory request spam gate and for the drop
// cooldown; the hive uses it for harvest pacing. State is in-memory only, so
// cooldowns reset with the process, matching session lifetime.
type Service interface {
	// TryAcquire checks the cooldown for (ownerID, action) and, if the
	// window has elapsed, records the use atomically. Returns false with
	// the remaining duration when still cooling down.
	TryAcquire(ownerID, action string) (bool, time.Duration)

	// Peek reports the cooldown state without consuming it.
	Peek(ownerID, action string) (bool, time.Duration)

	// Reset clears a cooldown (admin/testing).
	Reset(ownerID, action string)
}

// ErrOnCooldown is returned when an action is still on cooldown.
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf("action '%s' on cooldown: %s remaining", e.Action, e.Remaining.Round(time.Millisecond))
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

type service struct {
	mu       sync.Mutex
	lastUsed map[string]time.Time
	cfg      Config
	now      func() time.Time
}

// NewService creates a cooldown service. The clock defaults to time.Now
// and is injectable for tests.
func NewService(cfg Config, opts ...Option) Service {
	s := &service{
		lastUsed: make(map[string]time.Time),
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures the service.
type Option func(*service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func key(ownerID, action string) string {
	return ownerID + ":" + action
}

func (s *service) TryAcquire(ownerID, action string) (bool, time.Duration) {
	duration := s.cfg.GetCooldownDuration(action)
	if s.cfg.DevMode || duration <= 0 {
		return true, 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	k := key(ownerID, action)
	if last, ok := s.lastUsed[k]; ok {
		elapsed := now.Sub(last)
		if elapsed < duration {
			return false, duration - elapsed
		}
	}
	s.lastUsed[k] = now
	return true, 0
}

func (s *service) Peek(ownerID, action string) (bool, time.Duration) {
	duration := s.cfg.GetCooldownDuration(action)
	if s.cfg.DevMode || duration <= 0 {
		return false, 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastUsed[key(ownerID, action)]
	if !ok {
		return false, 0
	}
	elapsed := s.now().Sub(last)
	if elapsed >= duration {
		return false, 0
	}
	return true, duration - elapsed
}

func (s *service) Reset(ownerID, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastUsed, key(ownerID, action))
}
