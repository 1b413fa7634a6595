package domain

// DefaultSlotCount is the fixed capacity of a player inventory.
const DefaultSlotCount = 30

// DefaultMaxStackSize caps the quantity a single resource slot may hold.
const DefaultMaxStackSize = 99

// Slot is one storage cell of an inventory. A slot is empty iff the
// quantity is <= 0 AND the name is empty AND the kind is unset; the three
// conditions must agree at every externally observable point, so every
// mutation that could empty a slot goes through Clear.
type Slot struct {
	ItemStack
}

// IsEmpty reports slot emptiness using the triple condition. A slot where
// the three disagree is corrupt; IsEmpty deliberately requires all three so
// tests catch a partial clear.
func (s Slot) IsEmpty() bool {
	return s.Quantity <= 0 && s.Name == "" && s.Kind == KindNone
}

// Clear resets every field of the slot to its zero value in one step.
func (s *Slot) Clear() {
	s.ItemStack = ItemStack{}
}

// Set replaces the slot contents with the given stack.
func (s *Slot) Set(stack ItemStack) {
	s.ItemStack = stack
}

// Inventory is the authoritative, ordered, fixed-capacity slot sequence for
// one player session. Slot order is significant: every scan, merge and
// drain walks slots by ascending index so outcomes are deterministic.
type Inventory struct {
	PlayerID string `json:"player_id"`
	Slots    []Slot `json:"slots"`
}

// NewInventory creates an inventory with the given number of empty slots.
func NewInventory(playerID string, slotCount int) *Inventory {
	if slotCount <= 0 {
		slotCount = DefaultSlotCount
	}
	return &Inventory{
		PlayerID: playerID,
		Slots:    make([]Slot, slotCount),
	}
}

// FindSlot returns the index of the first slot matching the predicate, or
// -1 when none matches.
func (inv *Inventory) FindSlot(match func(Slot) bool) int {
	for i, slot := range inv.Slots {
		if match(slot) {
			return i
		}
	}
	return -1
}

// CloneSlots returns a deep copy of the slot array. The copy is used both
// for read-only snapshots handed to observers and as the scratch state for
// reserve-then-commit crafting.
func (inv *Inventory) CloneSlots() []Slot {
	out := make([]Slot, len(inv.Slots))
	copy(out, inv.Slots)
	return out
}

// CountByName sums the quantity held across every slot whose name matches.
func (inv *Inventory) CountByName(name string) int {
	total := 0
	for _, slot := range inv.Slots {
		if !slot.IsEmpty() && slot.Name == name {
			total += slot.Quantity
		}
	}
	return total
}
