package inventory

import (
	"github.com/skunkedgame/skunkd/internal/domain"
)

// Slot algebra. These functions mutate a slot array directly and are the
// only code that writes slots; every write that empties a slot goes through
// Slot.Clear so the triple emptiness condition never tears.

// addResource deposits up to qty units of a resource into the slots and
// returns how many units were actually placed.
//
// Two passes, both top-to-bottom: first top up every non-empty slot holding
// the identical name and resource type, then fill empty slots. The
// merge-first order keeps fragmentation down and is part of the observable
// contract: callers and tests rely on exactly this distribution.
func addResource(slots []domain.Slot, name string, rt domain.ResourceType, qty, maxStack int) int {
	if qty <= 0 || name == "" {
		return 0
	}

	remaining := qty

	for i := range slots {
		if remaining == 0 {
			break
		}
		s := &slots[i]
		if s.IsEmpty() || !s.SameResource(domain.ItemStack{Kind: domain.KindResource, Name: name, Resource: rt}) {
			continue
		}
		space := maxStack - s.Quantity
		if space <= 0 {
			continue
		}
		add := min(space, remaining)
		s.Quantity += add
		remaining -= add
	}

	for i := range slots {
		if remaining == 0 {
			break
		}
		s := &slots[i]
		if !s.IsEmpty() {
			continue
		}
		add := min(maxStack, remaining)
		s.Set(domain.NewResourceStack(name, rt, add))
		remaining -= add
	}

	return qty - remaining
}

// addUnique places a non-stackable stack (weapon or key item) into the
// first empty slot. Returns the slot index, or -1 when the inventory has no
// empty slot. All-or-nothing: a unique item is never split or merged.
func addUnique(slots []domain.Slot, stack domain.ItemStack) int {
	for i := range slots {
		if slots[i].IsEmpty() {
			slots[i].Set(stack)
			return i
		}
	}
	return -1
}

// placeStack dispatches on the stack kind and returns the quantity placed.
func placeStack(slots []domain.Slot, stack domain.ItemStack, maxStack int) int {
	switch stack.Kind {
	case domain.KindResource:
		return addResource(slots, stack.Name, stack.Resource, stack.Quantity, maxStack)
	case domain.KindWeapon, domain.KindKeyItem:
		if addUnique(slots, stack) >= 0 {
			return stack.Quantity
		}
		return 0
	default:
		return 0
	}
}

// hasIngredients aggregates the recipe requirements by item name and checks
// that the quantity summed across all matching slots meets each one.
// Requirements may be satisfied by several partial stacks.
func hasIngredients(slots []domain.Slot, recipe domain.Recipe) bool {
	required := make(map[string]int, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		required[ing.ItemName] += ing.Quantity
	}

	for name, need := range required {
		total := 0
		for _, s := range slots {
			if !s.IsEmpty() && s.Name == name {
				total += s.Quantity
			}
		}
		if total < need {
			return false
		}
	}
	return true
}

// consumeIngredients drains the recipe requirements from the slots, walking
// by ascending index and clearing slots that reach zero. The scan stops as
// soon as every requirement is satisfied; the drain order is the observable
// tie-break. Callers must have checked hasIngredients first.
func consumeIngredients(slots []domain.Slot, recipe domain.Recipe) {
	required := make(map[string]int, len(recipe.Ingredients))
	outstanding := 0
	for _, ing := range recipe.Ingredients {
		required[ing.ItemName] += ing.Quantity
		outstanding += ing.Quantity
	}

	for i := range slots {
		if outstanding == 0 {
			break
		}
		s := &slots[i]
		if s.IsEmpty() {
			continue
		}
		need, ok := required[s.Name]
		if !ok || need == 0 {
			continue
		}
		take := min(need, s.Quantity)
		s.Quantity -= take
		required[s.Name] -= take
		outstanding -= take
		if s.Quantity <= 0 {
			s.Clear()
		}
	}
}

// removeByName removes up to qty units from the first slot whose name
// matches. For non-stackable items the whole slot is always removed.
// Returns the removed stack (quantity set to the removed amount) and true,
// or a zero stack and false when no slot matches.
func removeByName(slots []domain.Slot, name string, qty int) (domain.ItemStack, bool) {
	for i := range slots {
		s := &slots[i]
		if s.IsEmpty() || s.Name != name {
			continue
		}

		removed := s.ItemStack
		if s.Stackable() {
			take := qty
			if take < 1 {
				take = 1
			}
			take = min(take, s.Quantity)
			removed.Quantity = take
			s.Quantity -= take
			if s.Quantity <= 0 {
				s.Clear()
			}
		} else {
			s.Clear()
		}
		return removed, true
	}
	return domain.ItemStack{}, false
}
