package domain

import "time"

// HoneySource is the authoritative state of one hive. Stock regenerates
// fractionally over time; whole units are transferred from the accumulator
// into stock. Harvests are gated by range, cooldown and remaining stock.
type HoneySource struct {
	ID               string    `json:"id"`
	Pos              Position  `json:"pos"`
	CurrentStock     int       `json:"current_stock"`
	MaxStock         int       `json:"max_stock"`
	RegenPerSecond   float64   `json:"regen_per_second"`
	RegenEnabled     bool      `json:"regen_enabled"`
	RegenAccumulator float64   `json:"-"`
	CooldownUntil    time.Time `json:"-"`
}
