package config

import "time"

// Configuration file paths
const (
	ConfigPathItems   = "configs/items.json"
	ConfigPathRecipes = "configs/recipes.json"
)

// Default tunables. These mirror the values the game shipped with; deploys
// override them through the environment.
const (
	DefaultPort = 8080

	DefaultMaxSlots     = 30
	DefaultMaxStackSize = 99
	DefaultPickupRange  = 4.0

	DefaultDropCooldown    = 500 * time.Millisecond
	DefaultRPCSpamCooldown = 50 * time.Millisecond

	DefaultHarvestCooldown = 3 * time.Second
	DefaultHarvestRange    = 3.0
	DefaultHarvestPerUse   = 3
	DefaultRegenPerSecond  = 0.25
	DefaultMaxHoneyStock   = 10
)
