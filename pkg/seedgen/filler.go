package seedgen

// placeRemaining distributes whatever is left of a world's pool into shops
// and placeholders, then fills leftover placeholders and unreachable
// locations with Spirit Light (spec section 4.8, C9). Runs once the main
// loop reports all of this world's reachable locations have been covered.
func placeRemaining(gc *GeneratorContext, worldIdx int) error {
	wc := gc.Worlds[worldIdx]

	shops, placeholders := partitionShops(wc.Placeholders)
	shuffle(gc.RNG, shops)
	shuffle(gc.RNG, placeholders)
	shuffle(gc.RNG, wc.UnreachableLocations)

	remainingPool := flattenInventory(wc.World.Pool.Inventory())
	shuffle(gc.RNG, remainingPool)

poolLoop:
	for _, item := range remainingPool {
		var node Node
		switch {
		case len(shops) > 0:
			node, shops = shops[0], shops[1:]
		case len(placeholders) > 0:
			node, placeholders = placeholders[0], placeholders[1:]
		default:
			if wc.log != nil {
				wc.log.Warn("not enough space to place remaining pool items")
			}
			break poolLoop
		}

		wc.World.Pool.Remove(item, 1)

		targetIdx := worldIdx
		if item.IsMultiworldSpread() && len(gc.Worlds) > 1 {
			targetIdx = gc.RNG.Intn(len(gc.Worlds))
		}
		target := gc.Worlds[targetIdx]
		target.World.GrantPlayer(item, 1)
		if err := placeItem(gc, wc, target, node, true, item); err != nil {
			return err
		}
	}

	if len(shops) > 0 && wc.log != nil {
		wc.log.Warn("not enough items in the pool to fill all shops")
	}

	for _, node := range placeholders {
		if err := fillWithSpiritLight(gc, wc, node, true); err != nil {
			return err
		}
	}

	if len(wc.UnreachableLocations) > 0 && wc.log != nil {
		wc.log.WithField("count", len(wc.UnreachableLocations)).Warn("filling unreachable locations with Spirit Light")
	}
	for _, node := range wc.UnreachableLocations {
		if err := fillWithSpiritLight(gc, wc, node, false); err != nil {
			return err
		}
	}

	return nil
}

func fillWithSpiritLight(gc *GeneratorContext, wc *WorldContext, node Node, wasPlaceholder bool) error {
	amount, err := wc.SpiritLightRNG.Sample(gc.RNG)
	if err != nil {
		return err
	}
	item := SpiritLight(amount)
	wc.World.GrantPlayer(item, 1)
	return placeItem(gc, wc, wc, node, wasPlaceholder, item)
}

// partitionShops splits placeholders into shop-slot nodes and the rest.
func partitionShops(placeholders []Node) (shops, rest []Node) {
	for _, node := range placeholders {
		state, hasState := node.UberState()
		if hasState && state.IsShop() {
			shops = append(shops, node)
		} else {
			rest = append(rest, node)
		}
	}
	return shops, rest
}

// flattenInventory expands an inventory into one entry per unit count.
func flattenInventory(inv Inventory) []Item {
	var out []Item
	inv.Each(func(item Item, n uint16) {
		for i := uint16(0); i < n; i++ {
			out = append(out, item)
		}
	})
	return out
}
