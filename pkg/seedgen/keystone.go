package seedgen

// forceKeystones preempts keydoor lockout (spec section 4.4, C6). World
// iteration is index-ascending for determinism (spec section 5); each
// world's keystone demand is computed and forced independently — the
// known "accumulate across worlds" quirk in the original is intentionally
// not reproduced (spec section 9's first Open Question).
func forceKeystones(gc *GeneratorContext, reachablePerWorld [][]Node) error {
	for worldIdx, wc := range gc.Worlds {
		placed := wc.World.Player.Inventory.Count(Keystone())
		if placed < 2 {
			continue
		}

		var required int
		for _, node := range reachablePerWorld[worldIdx] {
			state, hasState := node.UberState()
			if !hasState {
				continue
			}
			required += keystoneDemand(state.Identifier)
		}

		if uint16(required) <= placed {
			continue
		}

		missing := uint16(required) - placed
		for i := uint16(0); i < missing; i++ {
			if err := forcedPlacement(gc, worldIdx, Keystone()); err != nil {
				return err
			}
		}
	}
	return nil
}
