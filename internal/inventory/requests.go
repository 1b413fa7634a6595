package inventory

import (
	"context"

	"github.com/skunkedgame/skunkd/internal/cooldown"
	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/event"
	"github.com/skunkedgame/skunkd/internal/logger"
)

// RequestPickup collects a world pickup into the player's inventory.
//
// Stale references and out-of-range requests are silently ignored. For
// resources the placement policy is partial-and-report: whatever fits is
// deposited, the pickup's quantity drops by exactly that amount, and the
// pickup despawns only once empty. Nothing is ever lost or rolled back.
func (s *service) RequestPickup(ctx context.Context, playerID, pickupID string) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestPickup called", "playerID", playerID, "pickupID", pickupID)

	return s.mutate(ctx, "pickup", playerID, func(sess *session) domain.Result {
		pickup, ok := s.world.Get(pickupID)
		if !ok {
			if s.world.RecentlyDespawned(pickupID) {
				log.Debug("Duplicate pickup request for despawned pickup", "pickupID", pickupID)
			} else {
				log.Warn("Pickup request for unknown pickup", "pickupID", pickupID)
			}
			return domain.Reject(domain.RejectStalePickup)
		}

		if sess.pos.DistanceTo(pickup.Pos) > s.cfg.PickupRange {
			return domain.Reject(domain.RejectOutOfRange)
		}

		placed := placeStack(sess.inv.Slots, pickup.Item, s.cfg.MaxStackSize)
		if placed == 0 {
			return domain.Reject(domain.RejectInventoryFull)
		}

		s.world.Collect(pickupID, placed)
		s.publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.PickupCollected,
			Payload: event.PickupCollectedPayloadV1{
				PickupID:  pickupID,
				PlayerID:  playerID,
				ItemName:  pickup.Item.Name,
				Quantity:  placed,
				Timestamp: s.now().Unix(),
			},
		})
		log.Info("Pickup collected", "playerID", playerID, "item", pickup.Item.Name, "placed", placed)
		return domain.AcceptPlaced(placed)
	})
}

// RequestAddResource is the admin/debug direct grant of a resource stack.
func (s *service) RequestAddResource(ctx context.Context, playerID, name string, rt domain.ResourceType, quantity int) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestAddResource called", "playerID", playerID, "item", name, "quantity", quantity)

	return s.mutate(ctx, "add_resource", playerID, func(sess *session) domain.Result {
		if quantity <= 0 || name == "" || len(name) > domain.MaxItemNameLength {
			return domain.Reject(domain.RejectInvalidRequest)
		}
		if def, ok := s.items.GetByName(name); ok {
			if def.Kind != domain.KindResource || def.Resource != rt {
				return domain.Reject(domain.RejectInvalidRequest)
			}
		}

		placed := addResource(sess.inv.Slots, name, rt, quantity, s.cfg.MaxStackSize)
		if placed == 0 {
			return domain.Reject(domain.RejectInventoryFull)
		}
		return domain.AcceptPlaced(placed)
	})
}

// RequestAddWeapon is the admin/debug direct grant of a weapon.
func (s *service) RequestAddWeapon(ctx context.Context, playerID, name string, wt domain.WeaponType, damage, maxDurability int) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestAddWeapon called", "playerID", playerID, "item", name)

	return s.mutate(ctx, "add_weapon", playerID, func(sess *session) domain.Result {
		if name == "" || len(name) > domain.MaxItemNameLength || damage < 0 || maxDurability <= 0 {
			return domain.Reject(domain.RejectInvalidRequest)
		}
		if addUnique(sess.inv.Slots, domain.NewWeaponStack(name, wt, damage, maxDurability)) < 0 {
			return domain.Reject(domain.RejectInventoryFull)
		}
		return domain.AcceptPlaced(1)
	})
}

// RequestAddKeyItem is the admin/debug direct grant of a key item.
func (s *service) RequestAddKeyItem(ctx context.Context, playerID, name, keyID string, questItem bool) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestAddKeyItem called", "playerID", playerID, "item", name, "keyID", keyID)

	return s.mutate(ctx, "add_key_item", playerID, func(sess *session) domain.Result {
		if name == "" || len(name) > domain.MaxItemNameLength || keyID == "" {
			return domain.Reject(domain.RejectInvalidRequest)
		}
		if addUnique(sess.inv.Slots, domain.NewKeyItemStack(name, keyID, questItem)) < 0 {
			return domain.Reject(domain.RejectInventoryFull)
		}
		return domain.AcceptPlaced(1)
	})
}

// RequestMoveStack moves, merges or swaps stacks between two slots.
//
// Non-stackable items swap with an occupied destination and move into an
// empty one. Resources move the requested amount into an empty destination,
// merge into a matching one with any overflow remaining at the source, and
// swap whole stacks with a different item regardless of amount.
func (s *service) RequestMoveStack(ctx context.Context, playerID string, from, to, amount int, seq uint64) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestMoveStack called", "playerID", playerID, "from", from, "to", to, "amount", amount, "seq", seq)

	return s.mutate(ctx, "move_stack", playerID, func(sess *session) domain.Result {
		if !checkSeq(sess, seq) {
			return domain.Reject(domain.RejectDuplicateSeq)
		}

		slots := sess.inv.Slots
		if from == to || from < 0 || from >= len(slots) || to < 0 || to >= len(slots) {
			return domain.Reject(domain.RejectBadIndex)
		}
		src := &slots[from]
		dst := &slots[to]
		if src.IsEmpty() {
			return domain.Reject(domain.RejectEmptySlot)
		}

		switch {
		case !src.Stackable():
			// Whole-item move or full swap.
			if dst.IsEmpty() {
				dst.Set(src.ItemStack)
				src.Clear()
			} else {
				src.ItemStack, dst.ItemStack = dst.ItemStack, src.ItemStack
			}

		case dst.IsEmpty():
			move := clampAmount(amount, src.Quantity)
			dst.Set(domain.NewResourceStack(src.Name, src.Resource, move))
			src.Quantity -= move
			if src.Quantity <= 0 {
				src.Clear()
			}

		case dst.SameResource(src.ItemStack):
			move := clampAmount(amount, src.Quantity)
			transfer := min(move, s.cfg.MaxStackSize-dst.Quantity)
			if transfer <= 0 {
				// Destination already capped; overflow stays at source.
				// Still an accepted request, so the sequence advances.
				commitSeq(sess, seq)
				return domain.AcceptNoOp()
			}
			dst.Quantity += transfer
			src.Quantity -= transfer
			if src.Quantity <= 0 {
				src.Clear()
			}

		default:
			// Different item in the destination: swap entire stacks.
			src.ItemStack, dst.ItemStack = dst.ItemStack, src.ItemStack
		}

		commitSeq(sess, seq)
		return domain.Accept()
	})
}

// RequestUseSlot consumes up to amount units from a resource slot. Weapon
// and key item slots are not consumable: the request is accepted but does
// nothing.
func (s *service) RequestUseSlot(ctx context.Context, playerID string, slot, amount int, seq uint64) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestUseSlot called", "playerID", playerID, "slot", slot, "amount", amount, "seq", seq)

	return s.mutate(ctx, "use_slot", playerID, func(sess *session) domain.Result {
		if !checkSeq(sess, seq) {
			return domain.Reject(domain.RejectDuplicateSeq)
		}

		slots := sess.inv.Slots
		if slot < 0 || slot >= len(slots) {
			return domain.Reject(domain.RejectBadIndex)
		}
		target := &slots[slot]
		if target.IsEmpty() {
			return domain.Reject(domain.RejectEmptySlot)
		}
		if target.Kind != domain.KindResource {
			commitSeq(sess, seq)
			return domain.AcceptNoOp()
		}

		take := clampAmount(amount, target.Quantity)
		name := target.Name
		target.Quantity -= take
		if target.Quantity <= 0 {
			target.Clear()
		}

		commitSeq(sess, seq)
		s.publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.ItemUsed,
			Payload: event.ItemUsedPayloadV1{
				PlayerID:  playerID,
				ItemName:  name,
				Quantity:  take,
				Timestamp: s.now().Unix(),
			},
		})
		return domain.AcceptPlaced(take)
	})
}

// RequestDrop removes an item from the first slot matching the name and
// spawns a world pickup at the player's position. Key item drops are a
// known gap and deliberately do nothing.
func (s *service) RequestDrop(ctx context.Context, playerID, itemName string, quantity int) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestDrop called", "playerID", playerID, "item", itemName, "quantity", quantity)

	return s.mutate(ctx, "drop", playerID, func(sess *session) domain.Result {
		idx := sess.inv.FindSlot(func(sl domain.Slot) bool {
			return !sl.IsEmpty() && sl.Name == itemName
		})
		if idx < 0 {
			return domain.Reject(domain.RejectUnknownItem)
		}
		if sess.inv.Slots[idx].Kind == domain.KindKeyItem {
			return domain.AcceptNoOp()
		}

		if ok, remaining := s.cooldowns.TryAcquire(playerID, cooldown.ActionDrop); !ok {
			log.Debug("Drop on cooldown", "playerID", playerID, "remaining", remaining)
			return domain.Reject(domain.RejectOnCooldown)
		}

		removed, ok := removeByName(sess.inv.Slots, itemName, quantity)
		if !ok {
			return domain.Reject(domain.RejectUnknownItem)
		}

		pickup := s.world.Spawn(removed, sess.pos)
		s.publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.PickupSpawned,
			Payload: event.PickupSpawnedPayloadV1{
				PickupID:  pickup.ID,
				ItemName:  removed.Name,
				Quantity:  removed.Quantity,
				X:         sess.pos.X,
				Y:         sess.pos.Y,
				Z:         sess.pos.Z,
				Timestamp: s.now().Unix(),
			},
		})
		log.Info("Item dropped", "playerID", playerID, "item", removed.Name, "quantity", removed.Quantity, "pickupID", pickup.ID)
		return domain.AcceptPlaced(removed.Quantity)
	})
}

// RequestCraftByName crafts a recipe by exact name.
//
// Reserve-then-commit: ingredients are drained and the result placed on a
// scratch copy of the slots; the copy replaces the live slots only if the
// whole result fit. A full inventory therefore never destroys ingredients.
func (s *service) RequestCraftByName(ctx context.Context, playerID, recipeName string) domain.Result {
	log := logger.FromContext(ctx)
	log.Info("RequestCraftByName called", "playerID", playerID, "recipe", recipeName)

	return s.mutate(ctx, "craft", playerID, func(sess *session) domain.Result {
		recipe, ok := s.recipes.GetRecipeByName(recipeName)
		if !ok {
			return domain.Reject(domain.RejectUnknownRecipe)
		}
		resultDef, ok := s.items.GetByName(recipe.ResultName)
		if !ok {
			log.Error("Recipe result missing from item catalog", "recipe", recipeName, "result", recipe.ResultName)
			return domain.Reject(domain.RejectUnknownRecipe)
		}

		if !hasIngredients(sess.inv.Slots, recipe) {
			return domain.Reject(domain.RejectNoIngredients)
		}

		scratch := sess.inv.CloneSlots()
		consumeIngredients(scratch, recipe)

		result := resultDef.NewStack(recipe.ResultQuantity)
		if placeStack(scratch, result, s.cfg.MaxStackSize) < result.Quantity {
			return domain.Reject(domain.RejectInventoryFull)
		}

		copy(sess.inv.Slots, scratch)
		s.publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.ItemCrafted,
			Payload: event.ItemCraftedPayloadV1{
				PlayerID:   playerID,
				RecipeName: recipe.Name,
				ResultName: recipe.ResultName,
				Quantity:   recipe.ResultQuantity,
				Timestamp:  s.now().Unix(),
			},
		})
		log.Info("Item crafted", "playerID", playerID, "recipe", recipe.Name, "result", recipe.ResultName)
		return domain.AcceptPlaced(recipe.ResultQuantity)
	})
}

func (s *service) publish(ctx context.Context, ev event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", ev.Type, "error", err)
	}
}

// clampAmount normalizes a requested quantity: zero or negative means the
// whole stack, anything else clamps to [1, available].
func clampAmount(amount, available int) int {
	if amount <= 0 || amount > available {
		return available
	}
	return amount
}
