package seedgen

// minPlaceholdersBeforeDraw is the per-world placeholder floor random
// placement maintains before it starts drawing from the pool (spec section
// 4.6: "forces early buffering so the first progression round has slack").
const minPlaceholdersBeforeDraw = 4

// randomPlacement fills node, a reachable open slot in worldIdx (spec
// section 4.6, C5): either buffering it as a placeholder, or drawing from
// the pool and placing immediately.
func randomPlacement(gc *GeneratorContext, worldIdx int, node Node) error {
	wc := gc.Worlds[worldIdx]

	if len(wc.Placeholders) < minPlaceholdersBeforeDraw {
		wc.PushPlaceholder(node)
		return nil
	}

	partial := wc.World.Pool.ChooseRandom(gc.RNG)
	if partial.IsPlaceholder {
		wc.PushPlaceholder(node)
		return nil
	}

	item := partial.Item
	targetIdx := worldIdx
	if item.IsMultiworldSpread() && len(gc.Worlds) > 1 {
		targetIdx = gc.RNG.Intn(len(gc.Worlds))
	}
	target := gc.Worlds[targetIdx]

	target.World.GrantPlayer(item, 1)
	return placeItem(gc, wc, target, node, false, item)
}
