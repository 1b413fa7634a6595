package item

import (
	"github.com/skunkedgame/skunkd/internal/domain"
)

// Definition is the static template for one item kind. Weapon and key item
// templates supply the combat/quest fields stamped onto new stacks;
// resource definitions supply the subtype that controls stack merging.
type Definition struct {
	Name        string              `json:"name"`
	Kind        domain.Kind         `json:"kind"`
	Description string              `json:"description,omitempty"`
	Resource    domain.ResourceType `json:"resource_type,omitempty"`

	WeaponType    domain.WeaponType `json:"weapon_type,omitempty"`
	Damage        int               `json:"damage,omitempty"`
	MaxDurability int               `json:"max_durability,omitempty"`

	KeyID     string `json:"key_id,omitempty"`
	QuestItem bool   `json:"is_quest_item,omitempty"`
}

// NewStack builds a runtime stack from the template. Resource stacks take
// the requested quantity; weapons and key items are always single items.
func (d Definition) NewStack(quantity int) domain.ItemStack {
	switch d.Kind {
	case domain.KindResource:
		return domain.NewResourceStack(d.Name, d.Resource, quantity)
	case domain.KindWeapon:
		return domain.NewWeaponStack(d.Name, d.WeaponType, d.Damage, d.MaxDurability)
	case domain.KindKeyItem:
		return domain.NewKeyItemStack(d.Name, d.KeyID, d.QuestItem)
	default:
		return domain.ItemStack{}
	}
}

// Catalog is the immutable, explicitly constructed item catalog. It is
// built once at startup and injected into every service that needs item
// templates; there is no lazily initialized global.
type Catalog struct {
	byName map[string]Definition
	names  []string
}

// NewCatalog builds a catalog from validated definitions.
func NewCatalog(defs []Definition) *Catalog {
	c := &Catalog{
		byName: make(map[string]Definition, len(defs)),
		names:  make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if _, exists := c.byName[def.Name]; exists {
			continue
		}
		c.byName[def.Name] = def
		c.names = append(c.names, def.Name)
	}
	return c
}

// GetByName looks up a definition by exact item name.
func (c *Catalog) GetByName(name string) (Definition, bool) {
	def, ok := c.byName[name]
	return def, ok
}

// Names returns the catalog's item names in load order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.byName)
}
