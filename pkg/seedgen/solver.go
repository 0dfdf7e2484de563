package seedgen

import (
	"sort"

	"github.com/opd-ai/pathforge/pkg/logging"
)

// candidate is one minimal inventory that would unlock further reach in a
// specific world, alongside the weighting inputs needed to score it.
type candidate struct {
	worldIdx int
	inv      Inventory
}

// runProgressionSolver computes candidate minimum inventories across worlds,
// deduplicates dominated candidates, weights by cost and look-ahead reach
// gain, and forces one into play (spec section 4.7, C8). It is invoked when
// the current iteration found no reachable slot with room for a placement.
//
// slotsTotal is the global slot count (reserved + all placeholders);
// slotsPerWorld maps each world to its own reserved+placeholder count;
// currentReachCounts is the per-world count of currently-reachable placeable
// nodes, used as the lookahead baseline.
func runProgressionSolver(
	gc *GeneratorContext,
	reachableStatesPerWorld [][]Node,
	unmetPerWorld [][]UnmetRequirement,
	slotsTotal int,
	slotsPerWorld []int,
	currentReachCounts []int,
	anyPlacementsExist bool,
	iteration int,
	unreachedIdentifiers func() []string,
) error {
	order := shuffledIndices(gc.RNG, len(gc.Worlds))

	var itemsets []candidate
	for _, worldIdx := range order {
		built, err := buildItemsets(gc.Worlds[worldIdx], worldIdx, reachableStatesPerWorld[worldIdx], unmetPerWorld[worldIdx], slotsTotal, slotsPerWorld[worldIdx])
		if err != nil {
			return err
		}
		itemsets = built
		if len(itemsets) > 0 {
			break
		}
	}

	if len(itemsets) == 0 {
		if !anyPlacementsExist {
			return errFailedToReachAnything()
		}
		return errFailedToReachAll(unreachedIdentifiers())
	}

	itemsets = pruneDominated(itemsets)

	weights := make([]float64, len(itemsets))
	for i, c := range itemsets {
		weights[i] = weighCandidate(gc, c, slotsTotal, currentReachCounts[c.worldIdx])
	}

	chosen := itemsets[weightedChoice(gc.RNG, weights)]

	chosenWorld := gc.Worlds[chosen.worldIdx]
	if chosenWorld.log != nil {
		logging.SolverLogger(chosenWorld.log, chosen.worldIdx, iteration).WithField(
			"itemCount", chosen.inv.ItemCount(),
		).Debug("forcing progression itemset")
	}

	items := expandInventory(gc, gc.Worlds[chosen.worldIdx], chosen.inv)
	for _, item := range items {
		if err := forcedPlacement(gc, chosen.worldIdx, item); err != nil {
			return err
		}
	}
	return nil
}

// buildItemsets runs spec section 4.7 steps 1-2 for a single world.
func buildItemsets(wc *WorldContext, worldIdx int, reachableStates []Node, unmet []UnmetRequirement, slotsTotal, slotsForWorld int) ([]candidate, error) {
	ownedStates := make([]int, 0, len(reachableStates))
	for _, n := range reachableStates {
		ownedStates = append(ownedStates, n.Index())
	}

	var out []candidate
	for _, um := range unmet {
		alternatives := um.Requirement.ItemsNeeded(wc.World.Player, ownedStates)
		for _, alt := range alternatives {
			needed := wc.World.Player.Inventory.MissingItems(alt.Needed)

			orbStates := alt.OrbSets
			if len(orbStates) == 0 {
				orbStates = []int{0}
			}

			for _, orb := range orbStates {
				missing := wc.World.Player.MissingForOrbs(needed, alt.Cost, orb)
				if missing.ItemCount() == 0 {
					return nil, errContradiction(wc.PlayerName)
				}
				if missing.ItemCount() > slotsTotal {
					continue
				}
				if missing.WorldItemCount() > slotsForWorld {
					continue
				}
				if !wc.World.Pool.Contains(missing) {
					continue
				}
				out = append(out, candidate{worldIdx: worldIdx, inv: missing})
			}
		}
	}
	return out, nil
}

// pruneDominated sorts itemsets descending by item count and removes any
// inventory that is a superset of some later (no larger) one, leaving the
// antichain of minimal candidates (spec section 4.7 step 4, property P7).
func pruneDominated(itemsets []candidate) []candidate {
	sort.SliceStable(itemsets, func(i, j int) bool {
		return itemsets[i].inv.ItemCount() > itemsets[j].inv.ItemCount()
	})

	kept := make([]candidate, 0, len(itemsets))
	for i, c := range itemsets {
		dominated := false
		for j := i + 1; j < len(itemsets); j++ {
			if c.inv.Contains(itemsets[j].inv) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, c)
		}
	}
	return kept
}

// weighCandidate implements spec section 4.7 step 5.
func weighCandidate(gc *GeneratorContext, c candidate, slotsTotal int, currentReach int) float64 {
	base := 1.0 / float64(c.inv.Cost())

	newlyReached := lookaheadReachGain(gc, c, currentReach)

	if slotsTotal < 4 && newlyReached == 0 {
		return 1e-6
	}
	return base * float64(newlyReached+1)
}

// lookaheadReachGain grants the candidate inventory to a cloned copy of its
// world's player and measures the increase in reachable placeable nodes,
// without committing the provisional world (spec section 4.7 step 5,
// section 9's lookahead-cost note).
func lookaheadReachGain(gc *GeneratorContext, c candidate, currentReach int) int {
	wc := gc.Worlds[c.worldIdx]
	provisional := wc.World.Clone()
	c.inv.Each(func(item Item, n uint16) {
		provisional.GrantPlayer(item, n)
	})

	reached := provisional.Graph.ReachedLocations(provisional.Player, wc.Spawn, provisional.Ubers)
	placeable := 0
	for _, n := range reached {
		if n.CanPlace() {
			placeable++
		}
	}

	gain := placeable - currentReach
	if gain < 0 {
		gain = 0
	}
	return gain
}

// expandInventory flattens a chosen (item, amount) inventory into concrete
// items (spec section 4.7 step 6): Spirit Light entries are expanded into
// stacked amounts drawn from the world's SpiritLightAmounts sampler, other
// items repeat amount times.
func expandInventory(gc *GeneratorContext, wc *WorldContext, inv Inventory) []Item {
	var out []Item
	inv.Each(func(item Item, amount uint16) {
		if item.Kind == ItemSpiritLight {
			var cumulative uint16
			for cumulative < amount {
				sample, err := wc.SpiritLightRNG.Sample(gc.RNG)
				if err != nil {
					sample = amount - cumulative // degrade gracefully rather than lose the grant
				}
				out = append(out, SpiritLight(sample))
				cumulative += sample
				if sample == 0 {
					break // sampler floored to zero; stop rather than loop forever
				}
			}
			return
		}
		for i := uint16(0); i < amount; i++ {
			out = append(out, item)
		}
	})
	return out
}
