package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skunkedgame/skunkd/internal/domain"
)

func makeSlots(n int) []domain.Slot {
	return make([]domain.Slot, n)
}

// TestAddResource_OverflowSplitsAcrossSlots verifies that a deposit larger
// than one stack cap splits across slots top to bottom.
func TestAddResource_OverflowSplitsAcrossSlots(t *testing.T) {
	slots := makeSlots(30)

	placed := addResource(slots, "Oak Wood", domain.ResourceWood, 150, 99)

	assert.Equal(t, 150, placed)
	assert.Equal(t, 99, slots[0].Quantity)
	assert.Equal(t, 51, slots[1].Quantity)
	assert.True(t, slots[2].IsEmpty())
	assert.Equal(t, "Oak Wood", slots[0].Name)
	assert.Equal(t, domain.ResourceWood, slots[1].Resource)
}

// TestAddResource_MergesBeforeFillingEmpty verifies the merge-first pass:
// existing partial stacks top up before any empty slot is touched.
func TestAddResource_MergesBeforeFillingEmpty(t *testing.T) {
	slots := makeSlots(5)
	slots[2].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 90))

	placed := addResource(slots, "Stone", domain.ResourceStone, 20, 99)

	assert.Equal(t, 20, placed)
	assert.Equal(t, 99, slots[2].Quantity)
	assert.Equal(t, 11, slots[0].Quantity)
	assert.True(t, slots[1].IsEmpty())
}

// TestAddResource_DifferentSubtypeDoesNotMerge verifies that stacks merge
// only when both name and resource type match.
func TestAddResource_DifferentSubtypeDoesNotMerge(t *testing.T) {
	slots := makeSlots(5)
	slots[0].Set(domain.NewResourceStack("Rope", domain.ResourceFiber, 10))

	addResource(slots, "Rope", domain.ResourceWood, 5, 99)

	assert.Equal(t, 10, slots[0].Quantity)
	assert.Equal(t, 5, slots[1].Quantity)
	assert.Equal(t, domain.ResourceWood, slots[1].Resource)
}

// TestAddResource_PartialWhenNearlyFull verifies partial placement: whatever
// fits is placed and the remainder is reported as not placed.
func TestAddResource_PartialWhenNearlyFull(t *testing.T) {
	slots := makeSlots(1)
	slots[0].Set(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 90))

	placed := addResource(slots, "Oak Wood", domain.ResourceWood, 20, 99)

	assert.Equal(t, 9, placed)
	assert.Equal(t, 99, slots[0].Quantity)
}

func TestAddResource_RejectsInvalidInput(t *testing.T) {
	slots := makeSlots(5)

	assert.Zero(t, addResource(slots, "", domain.ResourceWood, 5, 99))
	assert.Zero(t, addResource(slots, "Oak Wood", domain.ResourceWood, 0, 99))
	assert.Zero(t, addResource(slots, "Oak Wood", domain.ResourceWood, -3, 99))
	for _, s := range slots {
		assert.True(t, s.IsEmpty())
	}
}

// TestAddUnique_TakesFirstEmptySlot verifies weapons land in the first empty
// slot and are never merged.
func TestAddUnique_TakesFirstEmptySlot(t *testing.T) {
	slots := makeSlots(3)
	slots[0].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 5))

	axe := domain.NewWeaponStack("Wooden Axe", domain.WeaponTool, 25, 50)
	idx := addUnique(slots, axe)

	require.Equal(t, 1, idx)
	assert.Equal(t, domain.KindWeapon, slots[1].Kind)
	assert.Equal(t, 1, slots[1].Quantity)

	// Second identical weapon takes the next slot, never stacks.
	idx = addUnique(slots, axe)
	assert.Equal(t, 2, idx)

	idx = addUnique(slots, axe)
	assert.Equal(t, -1, idx)
}

func TestPlaceStack_DispatchesOnKind(t *testing.T) {
	slots := makeSlots(2)

	placed := placeStack(slots, domain.NewResourceStack("Honey", domain.ResourceHoney, 3), 99)
	assert.Equal(t, 3, placed)

	placed = placeStack(slots, domain.NewKeyItemStack("Cabin Key", "cabin_door", true), 99)
	assert.Equal(t, 1, placed)

	// Inventory now full for unique items.
	placed = placeStack(slots, domain.NewWeaponStack("Scrap Knife", domain.WeaponMelee, 15, 30), 99)
	assert.Zero(t, placed)

	placed = placeStack(slots, domain.ItemStack{}, 99)
	assert.Zero(t, placed)
}

// TestHasIngredients_SumsAcrossPartialStacks verifies a requirement can be
// met by several partial stacks of the same item.
func TestHasIngredients_SumsAcrossPartialStacks(t *testing.T) {
	recipe := domain.Recipe{
		Name:        "Stone Hammer",
		Ingredients: []domain.Ingredient{{ItemName: "Oak Wood", Quantity: 3}, {ItemName: "Stone", Quantity: 4}},
	}

	slots := makeSlots(5)
	slots[0].Set(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 2))
	slots[3].Set(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 1))
	slots[4].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 4))

	assert.True(t, hasIngredients(slots, recipe))

	slots[3].Clear()
	assert.False(t, hasIngredients(slots, recipe))
}

// TestConsumeIngredients_DrainsAscendingAndClears verifies drain order and
// that slots reaching zero are fully cleared.
func TestConsumeIngredients_DrainsAscendingAndClears(t *testing.T) {
	recipe := domain.Recipe{
		Name:        "Wooden Axe",
		Ingredients: []domain.Ingredient{{ItemName: "Oak Wood", Quantity: 5}},
	}

	slots := makeSlots(4)
	slots[0].Set(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 3))
	slots[1].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 10))
	slots[2].Set(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 4))

	consumeIngredients(slots, recipe)

	assert.True(t, slots[0].IsEmpty(), "lowest index drains first")
	assert.Equal(t, 10, slots[1].Quantity, "unrelated stack untouched")
	assert.Equal(t, 2, slots[2].Quantity)
}

func TestRemoveByName(t *testing.T) {
	t.Run("stackable removes clamped quantity", func(t *testing.T) {
		slots := makeSlots(2)
		slots[0].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 10))

		removed, ok := removeByName(slots, "Stone", 4)
		require.True(t, ok)
		assert.Equal(t, 4, removed.Quantity)
		assert.Equal(t, 6, slots[0].Quantity)

		// Requests beyond the stack clamp to what is there.
		removed, ok = removeByName(slots, "Stone", 100)
		require.True(t, ok)
		assert.Equal(t, 6, removed.Quantity)
		assert.True(t, slots[0].IsEmpty())
	})

	t.Run("zero quantity removes one unit", func(t *testing.T) {
		slots := makeSlots(1)
		slots[0].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 10))

		removed, ok := removeByName(slots, "Stone", 0)
		require.True(t, ok)
		assert.Equal(t, 1, removed.Quantity)
		assert.Equal(t, 9, slots[0].Quantity)
	})

	t.Run("non-stackable removes whole slot", func(t *testing.T) {
		slots := makeSlots(1)
		slots[0].Set(domain.NewWeaponStack("Wooden Axe", domain.WeaponTool, 25, 50))

		removed, ok := removeByName(slots, "Wooden Axe", 99)
		require.True(t, ok)
		assert.Equal(t, 1, removed.Quantity)
		assert.Equal(t, domain.KindWeapon, removed.Kind)
		assert.True(t, slots[0].IsEmpty())
	})

	t.Run("no match", func(t *testing.T) {
		slots := makeSlots(1)
		_, ok := removeByName(slots, "Stone", 1)
		assert.False(t, ok)
	})
}
