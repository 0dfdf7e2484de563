package seedgen

// relicChance is the fixed Bernoulli probability a relic zone seeds a Relic
// bonus item (spec section 4.3).
const relicChance = 0.8

func relicItem() Item {
	return Item{Kind: ItemBonus, Code: "Relic", Name: "Relic", BonusKind: "Relic"}
}

// placeRelics seeds at most one Relic bonus item per eligible zone in each
// world (spec section 4.3, C7). Shuffle order (per world, then the
// outer per-zone, per-world loop) is fixed by spec section 5.
func placeRelics(gc *GeneratorContext) error {
	perWorldCandidates := make([][]Node, len(gc.Worlds))

	for worldIdx, wc := range gc.Worlds {
		var candidates []Node
		for _, node := range wc.World.Graph.AllNodes() {
			if !node.CanPlace() {
				continue
			}
			state, hasState := node.UberState()
			if !hasState {
				continue
			}
			if _, preplaced := wc.World.Preplacements[state]; preplaced {
				continue
			}
			zone, hasZone := node.Zone()
			if !hasZone || !isRelicZone(zone) {
				continue
			}
			candidates = append(candidates, node)
		}
		shuffle(gc.RNG, candidates)
		perWorldCandidates[worldIdx] = candidates
	}

	for _, zone := range RelicZones {
		for worldIdx, wc := range gc.Worlds {
			if gc.RNG.Float64() >= relicChance {
				continue
			}

			node, remaining, found := takeFirstInZone(perWorldCandidates[worldIdx], zone)
			if !found {
				continue
			}
			perWorldCandidates[worldIdx] = remaining

			targetIdx := gc.RNG.Intn(len(gc.Worlds))
			target := gc.Worlds[targetIdx]
			item := relicItem()
			target.World.GrantPlayer(item, 1)
			if err := placeItem(gc, wc, target, node, false, item); err != nil {
				return err
			}
		}
	}

	return nil
}

func isRelicZone(zone string) bool {
	for _, z := range RelicZones {
		if z == zone {
			return true
		}
	}
	return false
}

// takeFirstInZone removes and returns the first node in candidates whose
// zone matches, alongside the candidate slice with it removed.
func takeFirstInZone(candidates []Node, zone string) (Node, []Node, bool) {
	for i, node := range candidates {
		nodeZone, ok := node.Zone()
		if ok && nodeZone == zone {
			remaining := append(append([]Node{}, candidates[:i]...), candidates[i+1:]...)
			return node, remaining, true
		}
	}
	return nil, candidates, false
}
