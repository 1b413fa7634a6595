package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skunkedgame/skunkd/internal/domain"
)

// TestSlot_IsEmpty exercises the triple emptiness condition: a slot is
// empty only when quantity, name and kind all agree.
func TestSlot_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		stack domain.ItemStack
		want  bool
	}{
		{"zero value", domain.ItemStack{}, true},
		{"negative quantity only", domain.ItemStack{Quantity: -1}, true},
		{"occupied resource", domain.NewResourceStack("Oak Wood", domain.ResourceWood, 5), false},
		{"quantity without name", domain.ItemStack{Quantity: 3}, false},
		{"name without quantity", domain.ItemStack{Name: "Oak Wood"}, false},
		{"kind without the rest", domain.ItemStack{Kind: domain.KindResource}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Slot{ItemStack: tt.stack}
			assert.Equal(t, tt.want, s.IsEmpty())
		})
	}
}

func TestSlot_ClearResetsEveryField(t *testing.T) {
	s := domain.Slot{ItemStack: domain.NewWeaponStack("Wooden Axe", domain.WeaponTool, 25, 50)}
	require.False(t, s.IsEmpty())

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, domain.ItemStack{}, s.ItemStack)
}

func TestNewInventory(t *testing.T) {
	inv := domain.NewInventory("p1", 30)
	assert.Equal(t, "p1", inv.PlayerID)
	assert.Len(t, inv.Slots, 30)
	for _, s := range inv.Slots {
		assert.True(t, s.IsEmpty())
	}

	// Non-positive counts fall back to the default capacity.
	inv = domain.NewInventory("p1", 0)
	assert.Len(t, inv.Slots, domain.DefaultSlotCount)
}

func TestInventory_CloneSlotsIsIndependent(t *testing.T) {
	inv := domain.NewInventory("p1", 3)
	inv.Slots[0].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 5))

	clone := inv.CloneSlots()
	clone[0].Quantity = 99
	clone[1].Set(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 1))

	assert.Equal(t, 5, inv.Slots[0].Quantity)
	assert.True(t, inv.Slots[1].IsEmpty())
}

func TestInventory_FindSlot(t *testing.T) {
	inv := domain.NewInventory("p1", 3)
	inv.Slots[1].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 5))

	idx := inv.FindSlot(func(s domain.Slot) bool { return s.Name == "Stone" })
	assert.Equal(t, 1, idx)

	idx = inv.FindSlot(func(s domain.Slot) bool { return s.Name == "Gold" })
	assert.Equal(t, -1, idx)
}

func TestInventory_CountByName(t *testing.T) {
	inv := domain.NewInventory("p1", 4)
	inv.Slots[0].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 99))
	inv.Slots[2].Set(domain.NewResourceStack("Stone", domain.ResourceStone, 40))
	inv.Slots[3].Set(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 7))

	assert.Equal(t, 139, inv.CountByName("Stone"))
	assert.Equal(t, 7, inv.CountByName("Oak Wood"))
	assert.Zero(t, inv.CountByName("Honey"))
}

func TestItemStack_SameResource(t *testing.T) {
	wood := domain.NewResourceStack("Oak Wood", domain.ResourceWood, 1)

	assert.True(t, wood.SameResource(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 50)))
	assert.False(t, wood.SameResource(domain.NewResourceStack("Oak Wood", domain.ResourceStone, 1)), "subtype differs")
	assert.False(t, wood.SameResource(domain.NewResourceStack("Stone", domain.ResourceWood, 1)), "name differs")
	assert.False(t, wood.SameResource(domain.NewWeaponStack("Oak Wood", domain.WeaponTool, 1, 1)), "kind differs")
}

func TestNewWeaponStack_StartsAtMaxDurability(t *testing.T) {
	w := domain.NewWeaponStack("Wooden Axe", domain.WeaponTool, 25, 50)

	assert.Equal(t, 1, w.Quantity)
	assert.Equal(t, 50, w.Durability)
	assert.Equal(t, 50, w.MaxDurability)
	assert.False(t, w.Stackable())
}

func TestPosition_DistanceTo(t *testing.T) {
	a := domain.Position{}
	b := domain.Position{X: 3, Z: 4}

	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, 5.0, b.DistanceTo(a), 1e-9)
	assert.Zero(t, a.DistanceTo(a))
}
