package domain

import (
	"math"
	"time"
)

// Position is a point in world space. Units match the game world; the
// pickup and harvest range checks measure straight-line distance.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Pickup is a world-visible item entity that players may collect. Pickups
// are created when items leave an inventory (drop) or a resource source
// (honey harvest) and despawn once fully collected.
type Pickup struct {
	ID        string    `json:"id"`
	Item      ItemStack `json:"item"`
	Pos       Position  `json:"pos"`
	SpawnedAt time.Time `json:"spawned_at"`
}
