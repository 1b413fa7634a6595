package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/skunkedgame/skunkd/internal/domain"
)

// Sentinel errors for the item loader
var (
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid item configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string       `json:"version"`
	Description string       `json:"description,omitempty"`
	Items       []Definition `json:"items"`
}

// Load reads, parses and validates an items JSON file and returns the
// immutable catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse item config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return NewCatalog(config.Items), nil
}

// Validate checks the item configuration for errors
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateDefinition(i, &config.Items[i], names); err != nil {
			return err
		}
	}
	return nil
}

func validateDefinition(index int, def *Definition, names map[string]bool) error {
	if def.Name == "" {
		return fmt.Errorf("%w: item at index %d has empty name", ErrInvalidConfig, index)
	}
	if len(def.Name) > domain.MaxItemNameLength {
		return fmt.Errorf("%w: item '%s' name exceeds %d characters", ErrInvalidConfig, def.Name, domain.MaxItemNameLength)
	}
	if names[def.Name] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
	}
	names[def.Name] = true

	switch def.Kind {
	case domain.KindResource:
		if def.Resource == "" {
			return fmt.Errorf("%w: resource '%s' has no resource_type", ErrInvalidConfig, def.Name)
		}
	case domain.KindWeapon:
		if def.WeaponType == "" {
			return fmt.Errorf("%w: weapon '%s' has no weapon_type", ErrInvalidConfig, def.Name)
		}
		if def.Damage < 0 {
			return fmt.Errorf("%w: weapon '%s' has negative damage", ErrInvalidConfig, def.Name)
		}
		if def.MaxDurability <= 0 {
			return fmt.Errorf("%w: weapon '%s' has non-positive max_durability", ErrInvalidConfig, def.Name)
		}
	case domain.KindKeyItem:
		if def.KeyID == "" {
			return fmt.Errorf("%w: key item '%s' has no key_id", ErrInvalidConfig, def.Name)
		}
	default:
		return fmt.Errorf("%w: item '%s' has unknown kind %q", ErrInvalidConfig, def.Name, def.Kind)
	}

	return nil
}
