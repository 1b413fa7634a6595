package domain

// Kind tags the variant held by an ItemStack. A stack holds exactly one
// variant; KindNone marks the absence of an item.
type Kind string

const (
	KindNone     Kind = ""
	KindResource Kind = "resource"
	KindWeapon   Kind = "weapon"
	KindKeyItem  Kind = "key_item"
)

// ResourceType categorizes stackable raw materials. Stacks merge only when
// both the item name and the resource type match.
type ResourceType string

const (
	ResourceWood  ResourceType = "wood"
	ResourceStone ResourceType = "stone"
	ResourceHoney ResourceType = "honey"
	ResourceFiber ResourceType = "fiber"
	ResourceScrap ResourceType = "scrap"
)

// WeaponType categorizes weapons for equip/animation purposes downstream.
type WeaponType string

const (
	WeaponTool   WeaponType = "tool"
	WeaponMelee  WeaponType = "melee"
	WeaponRanged WeaponType = "ranged"
)

// MaxItemNameLength bounds the name field of any stack.
const MaxItemNameLength = 32

// ItemStack is a quantity of one item occupying a single slot or world
// pickup. The Kind tag selects which variant fields are meaningful:
// Resource* for KindResource, Weapon/Damage/Durability for KindWeapon,
// KeyID/QuestItem for KindKeyItem. Consumers switch on Kind; fields of
// other variants stay at their zero values.
type ItemStack struct {
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	Resource ResourceType `json:"resource_type,omitempty"`

	Weapon        WeaponType `json:"weapon_type,omitempty"`
	Damage        int        `json:"damage,omitempty"`
	Durability    int        `json:"durability,omitempty"`
	MaxDurability int        `json:"max_durability,omitempty"`

	KeyID     string `json:"key_id,omitempty"`
	QuestItem bool   `json:"is_quest_item,omitempty"`
}

// Stackable reports whether the stack may merge with others of the same
// name and resource type. Only resources stack; weapons and key items
// always occupy a slot alone.
func (s ItemStack) Stackable() bool {
	return s.Kind == KindResource
}

// SameResource reports whether two stacks hold the identical mergeable
// resource (name and subtype both match).
func (s ItemStack) SameResource(other ItemStack) bool {
	return s.Kind == KindResource && other.Kind == KindResource &&
		s.Name == other.Name && s.Resource == other.Resource
}

// NewResourceStack builds a resource stack.
func NewResourceStack(name string, rt ResourceType, quantity int) ItemStack {
	return ItemStack{
		Kind:     KindResource,
		Name:     name,
		Quantity: quantity,
		Resource: rt,
	}
}

// NewWeaponStack builds a weapon stack with durability initialized to the
// maximum. Weapons always carry quantity 1.
func NewWeaponStack(name string, wt WeaponType, damage, maxDurability int) ItemStack {
	return ItemStack{
		Kind:          KindWeapon,
		Name:          name,
		Quantity:      1,
		Weapon:        wt,
		Damage:        damage,
		Durability:    maxDurability,
		MaxDurability: maxDurability,
	}
}

// NewKeyItemStack builds a key item stack. Key items always carry quantity 1.
func NewKeyItemStack(name, keyID string, questItem bool) ItemStack {
	return ItemStack{
		Kind:      KindKeyItem,
		Name:      name,
		Quantity:  1,
		KeyID:     keyID,
		QuestItem: questItem,
	}
}
