package cooldown

import "time"

// ActionDrop paces item drops per player. Hive harvests are paced by the
// hive itself, and the rpc spam gate lives in the request pipeline, so
// neither goes through this service.
const ActionDrop = "drop"

// DefaultCooldownDuration applies to unknown actions.
const DefaultCooldownDuration = 50 * time.Millisecond

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action string) time.Duration {
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}
	return DefaultCooldownDuration
}
