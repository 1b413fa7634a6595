package crafting

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/item"
)

// Sentinel errors for the recipe loader
var (
	ErrDuplicateRecipe = errors.New("duplicate recipe name")
	ErrInvalidConfig   = errors.New("invalid recipe configuration")
	ErrUnknownItem     = errors.New("recipe references unknown item")
)

// Config represents the JSON configuration for recipes
type Config struct {
	Version     string          `json:"version"`
	Description string          `json:"description,omitempty"`
	Recipes     []domain.Recipe `json:"recipes"`
}

// Load reads, parses and validates a recipes JSON file. Every ingredient
// and result must resolve against the item catalog, so a bad data file
// fails at startup instead of at craft time.
func Load(path string, items *item.Catalog) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse recipe config: %w", err)
	}

	if err := Validate(&config, items); err != nil {
		return nil, err
	}

	return NewCatalog(config.Recipes), nil
}

// Validate checks the recipe configuration against the item catalog.
func Validate(config *Config, items *item.Catalog) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(config.Recipes) == 0 {
		return fmt.Errorf("%w: no recipes defined", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(config.Recipes))
	for i := range config.Recipes {
		if err := validateRecipe(i, &config.Recipes[i], names, items); err != nil {
			return err
		}
	}
	return nil
}

func validateRecipe(index int, r *domain.Recipe, names map[string]bool, items *item.Catalog) error {
	if r.Name == "" {
		return fmt.Errorf("%w: recipe at index %d has empty name", ErrInvalidConfig, index)
	}
	if names[r.Name] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateRecipe, r.Name)
	}
	names[r.Name] = true

	if len(r.Ingredients) == 0 {
		return fmt.Errorf("%w: recipe '%s' has no ingredients", ErrInvalidConfig, r.Name)
	}
	for _, ing := range r.Ingredients {
		if ing.Quantity <= 0 {
			return fmt.Errorf("%w: recipe '%s' ingredient '%s' has non-positive quantity", ErrInvalidConfig, r.Name, ing.ItemName)
		}
		if _, ok := items.GetByName(ing.ItemName); !ok {
			return fmt.Errorf("%w: recipe '%s' ingredient '%s'", ErrUnknownItem, r.Name, ing.ItemName)
		}
	}

	if r.ResultQuantity <= 0 {
		return fmt.Errorf("%w: recipe '%s' has non-positive result quantity", ErrInvalidConfig, r.Name)
	}
	resultDef, ok := items.GetByName(r.ResultName)
	if !ok {
		return fmt.Errorf("%w: recipe '%s' result '%s'", ErrUnknownItem, r.Name, r.ResultName)
	}
	if resultDef.Kind != r.ResultKind {
		return fmt.Errorf("%w: recipe '%s' result kind %q does not match item catalog kind %q",
			ErrInvalidConfig, r.Name, r.ResultKind, resultDef.Kind)
	}
	if r.ResultKind != domain.KindResource && r.ResultQuantity != 1 {
		return fmt.Errorf("%w: recipe '%s' non-stackable result must have quantity 1", ErrInvalidConfig, r.Name)
	}

	return nil
}
