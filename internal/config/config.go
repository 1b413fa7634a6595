package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
//
// The gameplay tunables (slot capacity, stack cap, ranges, cooldowns,
// honey regen) are static for the process lifetime; services receive them
// at construction and never re-read the environment.
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // API key for admin endpoint authentication

	ItemsPath   string
	RecipesPath string

	MaxSlots        int
	MaxStackSize    int
	PickupRange     float64
	DropCooldown    time.Duration
	RPCSpamCooldown time.Duration

	HarvestCooldown time.Duration
	HarvestRange    float64
	HarvestPerUse   int
	RegenPerSecond  float64
	MaxHoneyStock   int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "skunkd"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),
		ItemsPath:   getEnv("ITEMS_PATH", ConfigPathItems),
		RecipesPath: getEnv("RECIPES_PATH", ConfigPathRecipes),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.MaxSlots, err = getEnvInt("MAX_SLOTS", DefaultMaxSlots); err != nil {
		return nil, err
	}
	if cfg.MaxStackSize, err = getEnvInt("MAX_STACK_SIZE", DefaultMaxStackSize); err != nil {
		return nil, err
	}
	if cfg.HarvestPerUse, err = getEnvInt("HARVEST_PER_USE", DefaultHarvestPerUse); err != nil {
		return nil, err
	}
	if cfg.MaxHoneyStock, err = getEnvInt("MAX_HONEY_STOCK", DefaultMaxHoneyStock); err != nil {
		return nil, err
	}
	if cfg.PickupRange, err = getEnvFloat("PICKUP_RANGE", DefaultPickupRange); err != nil {
		return nil, err
	}
	if cfg.HarvestRange, err = getEnvFloat("HARVEST_RANGE", DefaultHarvestRange); err != nil {
		return nil, err
	}
	if cfg.RegenPerSecond, err = getEnvFloat("REGEN_PER_SECOND", DefaultRegenPerSecond); err != nil {
		return nil, err
	}
	if cfg.DropCooldown, err = getEnvDuration("DROP_COOLDOWN", DefaultDropCooldown); err != nil {
		return nil, err
	}
	if cfg.RPCSpamCooldown, err = getEnvDuration("RPC_SPAM_COOLDOWN", DefaultRPCSpamCooldown); err != nil {
		return nil, err
	}
	if cfg.HarvestCooldown, err = getEnvDuration("HARVEST_COOLDOWN", DefaultHarvestCooldown); err != nil {
		return nil, err
	}

	if cfg.MaxSlots <= 0 {
		return nil, fmt.Errorf("MAX_SLOTS must be positive, got %d", cfg.MaxSlots)
	}
	if cfg.MaxStackSize <= 0 {
		return nil, fmt.Errorf("MAX_STACK_SIZE must be positive, got %d", cfg.MaxStackSize)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
