package crafting

import (
	"github.com/skunkedgame/skunkd/internal/domain"
)

// Catalog is the immutable recipe catalog, built once at startup and
// injected into the inventory pipeline. Lookup is by exact recipe name.
type Catalog struct {
	byName map[string]domain.Recipe
	names  []string
}

// NewCatalog builds a catalog from validated recipes.
func NewCatalog(recipes []domain.Recipe) *Catalog {
	c := &Catalog{
		byName: make(map[string]domain.Recipe, len(recipes)),
		names:  make([]string, 0, len(recipes)),
	}
	for _, r := range recipes {
		if _, exists := c.byName[r.Name]; exists {
			continue
		}
		c.byName[r.Name] = r
		c.names = append(c.names, r.Name)
	}
	return c
}

// GetRecipeByName looks up a recipe by exact name.
func (c *Catalog) GetRecipeByName(name string) (domain.Recipe, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Names returns recipe names in load order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Recipes returns every recipe in load order.
func (c *Catalog) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}
