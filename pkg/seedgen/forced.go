package seedgen

// forcedPlacement consumes item and places it into a reserved or
// placeholder slot of targetWorld (spec section 4.5, C4). Multiworld-spread
// items may land in any world's slot; everything else is restricted to
// targetWorld's own slots.
func forcedPlacement(gc *GeneratorContext, targetIdx int, item Item) error {
	target := gc.Worlds[targetIdx]

	chosenIdx, node, wasPlaceholder, ok := chooseForcedSlot(gc, targetIdx, item)
	if !ok {
		return errNotEnoughSlots(item.DisplayName())
	}
	origin := gc.Worlds[chosenIdx]

	// Spirit Light never lands on a shop slot (invariant I2): keep
	// re-drawing, parking skipped slots, until a non-shop slot is found.
	if item.Kind == ItemSpiritLight {
		type skippedSlot struct {
			world int
			node  Node
		}
		var skipped []skippedSlot
		for {
			state, hasState := node.UberState()
			if hasState && !state.IsShop() {
				break
			}
			skipped = append(skipped, skippedSlot{chosenIdx, node})

			chosenIdx, node, wasPlaceholder, ok = chooseForcedSlot(gc, targetIdx, item)
			if !ok {
				// Return skipped slots before failing so we don't leak them.
				for _, s := range skipped {
					returnSlot(gc, s.world, s.node)
				}
				return errNotEnoughSlots(item.DisplayName())
			}
			origin = gc.Worlds[chosenIdx]
		}
		for _, s := range skipped {
			returnSlot(gc, s.world, s.node)
		}
	}

	if err := placeItem(gc, origin, target, node, wasPlaceholder, item); err != nil {
		return err
	}

	target.World.GrantPlayer(item, 1)
	target.World.Pool.Remove(item, 1)
	return nil
}

// chooseForcedSlot pops a reserved-then-placeholder slot for item, reporting
// which world it came from and whether it was a reserved pop (false) or a
// placeholder pop (true).
func chooseForcedSlot(gc *GeneratorContext, targetIdx int, item Item) (worldIdx int, node Node, wasPlaceholder bool, ok bool) {
	if item.IsMultiworldSpread() {
		order := shuffledIndices(gc.RNG, len(gc.Worlds))
		for _, idx := range order {
			if n := gc.Worlds[idx].PopReserved(); n != nil {
				return idx, n, false, true
			}
		}
		for _, idx := range order {
			if n := gc.Worlds[idx].PopPlaceholder(); n != nil {
				return idx, n, true, true
			}
		}
		return 0, nil, false, false
	}

	wc := gc.Worlds[targetIdx]
	if n := wc.PopReserved(); n != nil {
		return targetIdx, n, false, true
	}
	if n := wc.PopPlaceholder(); n != nil {
		return targetIdx, n, true, true
	}
	return 0, nil, false, false
}

// returnSlot restores a skipped slot to its world's placeholder stack (spec
// section 4.5 step 2: "after success, return skipped slots to their world's
// placeholder stack" — reserved pops are returned as placeholders too,
// since their reservation was already consumed for this attempt).
func returnSlot(gc *GeneratorContext, worldIdx int, node Node) {
	gc.Worlds[worldIdx].PushPlaceholder(node)
}
