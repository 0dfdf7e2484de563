package seedgen

import (
	"math"
	"math/rand"

	"github.com/opd-ai/pathforge/pkg/logging"
	"github.com/opd-ai/pathforge/pkg/procgen"
	"github.com/sirupsen/logrus"
)

// WorldInput describes one world's external collaborators and settings
// (spec section 6: "Settings recognized by the core").
type WorldInput struct {
	PlayerName string
	Graph      Graph
	Pool       Pool

	// SpawnName is resolved through Graph.FindSpawn. Empty means DefaultSpawn.
	SpawnName string

	// CustomSpawn is true when this world's spawn was explicitly set
	// away from the default (spec section 4.9: triggers the three
	// synthetic spawn-slot placements and the teleport message).
	CustomSpawn bool
}

// Settings bundles the run-wide configuration the core consumes directly.
type Settings struct {
	Worlds      []WorldInput
	Relics      bool // goalmodes contains "Relics"
	CustomNames map[string]string
}

// spawnSlotNode is a synthetic Node representing one of the three item
// slots granted at a non-default spawn (spec section 4.9). It carries no
// real graph index and is never returned by the Graph collaborator.
type spawnSlotNode struct {
	ordinal int
}

func (s spawnSlotNode) Index() int                   { return -1000 - s.ordinal }
func (s spawnSlotNode) Identifier() string           { return "SpawnSlot" }
func (s spawnSlotNode) UberState() (UberState, bool) { return SpawnState, true }
func (s spawnSlotNode) Zone() (string, bool)         { return "", false }
func (s spawnSlotNode) CanPlace() bool               { return true }

// GeneratePlacements runs the outer fixed-point loop (spec section 4.9, C10)
// and returns the final placement list for every world.
func GeneratePlacements(rng *rand.Rand, settings Settings, log *logrus.Entry) ([][]Placement, error) {
	gc := &GeneratorContext{
		CustomNames: settings.CustomNames,
		RNG:         rng,
		Log:         log,
	}

	totalReachEver := make([]int, len(settings.Worlds))

	for _, input := range settings.Worlds {
		spawn, err := input.Graph.FindSpawn(spawnNameOrDefault(input))
		if err != nil {
			return nil, err
		}

		world := NewWorld(input.Graph, input.Pool)
		worldLog := logging.WorldLogger(log, len(gc.Worlds), input.PlayerName)
		wc := &WorldContext{
			World:                  world,
			PlayerName:             input.PlayerName,
			Spawn:                  spawn,
			CollectedPreplacements: make(map[int]bool),
			log:                    worldLog,
		}

		world.CollectPreplacements(SpawnState)

		if input.CustomSpawn {
			for i := 0; i < 3; i++ {
				wc.SpawnSlots = append(wc.SpawnSlots, spawnSlotNode{ordinal: i})
			}
			wc.Placements = append(wc.Placements, Placement{
				Node:      nil,
				UberState: SpawnState,
				Item:      MessageItem("f=420|instant"),
			})
		}

		reachable, unreachable, err := totalReachCheck(input.Graph, world, spawn)
		if err != nil {
			return nil, err
		}
		wc.ReachableLocations = reachable
		wc.UnreachableLocations = unreachable

		placeableCount := len(reachable) + len(unreachable)
		spiritLightSlots := float64(placeableCount) - float64(world.Pool.Inventory().ItemCount())
		if spiritLightSlots < 0 {
			spiritLightSlots = 0
		}
		wc.SpiritLightRNG = NewSpiritLightAmounts(float64(world.Pool.SpiritLight()), spiritLightSlots)

		totalReachEver[len(gc.Worlds)] = len(reachable)
		gc.Worlds = append(gc.Worlds, wc)
	}

	if settings.Relics {
		if err := placeRelics(gc); err != nil {
			return nil, err
		}
	}

	iteration := 0
	for {
		iteration++
		worldReachablePlaceables := make([][]Node, len(gc.Worlds))
		worldReachableStates := make([][]Node, len(gc.Worlds))
		worldUnmet := make([][]UnmetRequirement, len(gc.Worlds))

		for i, wc := range gc.Worlds {
			reached, unmet := wc.World.Graph.ReachedAndProgressions(wc.World.Player, wc.Spawn, wc.World.Ubers)
			worldUnmet[i] = unmet

			for _, n := range reached {
				if n.CanPlace() {
					worldReachablePlaceables[i] = append(worldReachablePlaceables[i], n)
				} else {
					worldReachableStates[i] = append(worldReachableStates[i], n)
				}
			}
		}

		unreachedCount := 0
		for i := range gc.Worlds {
			unreachedCount += totalReachEver[i] - len(worldReachablePlaceables[i])
		}

		if err := forceKeystones(gc, worldReachableStates); err != nil {
			return nil, err
		}

		needsPlacementPerWorld := make([][]Node, len(gc.Worlds))
		for i, wc := range gc.Worlds {
			for _, n := range worldReachablePlaceables[i] {
				if wc.IsPlaced(n) || wc.IsHeld(n) {
					continue
				}
				state, hasState := n.UberState()
				if hasState {
					if _, preplaced := wc.World.Preplacements[state]; preplaced {
						if wc.World.CollectPreplacements(state) {
							wc.MarkPlaced(n)
						}
						continue
					}
				}
				needsPlacementPerWorld[i] = append(needsPlacementPerWorld[i], n)
			}
			needsPlacementPerWorld[i] = append(needsPlacementPerWorld[i], wc.SpawnSlots...)
			wc.SpawnSlots = nil
			shuffle(gc.RNG, needsPlacementPerWorld[i])
		}

		if unreachedCount > 0 {
			topUpReservedSlots(gc, needsPlacementPerWorld)
		}

		anyNeedsPlacement := false
		for _, needs := range needsPlacementPerWorld {
			if len(needs) > 0 {
				anyNeedsPlacement = true
				break
			}
		}

		if !anyNeedsPlacement {
			slotsTotal := 0
			slotsPerWorld := make([]int, len(gc.Worlds))
			currentReach := make([]int, len(gc.Worlds))
			anyPlacementsExist := false
			for i, wc := range gc.Worlds {
				slotsPerWorld[i] = len(wc.ReservedSlots) + len(wc.Placeholders)
				slotsTotal += slotsPerWorld[i]
				currentReach[i] = len(worldReachablePlaceables[i])
				if len(wc.Placements) > 0 {
					anyPlacementsExist = true
				}
			}

			err := runProgressionSolver(gc, worldReachableStates, worldUnmet, slotsTotal, slotsPerWorld, currentReach, anyPlacementsExist, iteration, func() []string {
				return unreachedIdentifiers(gc)
			})
			if err != nil {
				return nil, err
			}
		} else {
			for i, needs := range needsPlacementPerWorld {
				for _, node := range needs {
					if err := randomPlacement(gc, i, node); err != nil {
						return nil, err
					}
				}
			}
		}

		if unreachedCount == 0 {
			for i := range gc.Worlds {
				if err := placeRemaining(gc, i); err != nil {
					return nil, err
				}
			}

			out := make([][]Placement, len(gc.Worlds))
			for i, wc := range gc.Worlds {
				out[i] = wc.Placements
			}
			return out, nil
		}
	}
}

// topUpReservedSlots moves nodes out of each world's needs-placement batch
// into its reserved-slot stack, at random, until the global reserved count
// reaches ReserveSlots (spec section 4.9 step 5).
func topUpReservedSlots(gc *GeneratorContext, needsPlacementPerWorld [][]Node) {
	reserved := 0
	for _, wc := range gc.Worlds {
		reserved += len(wc.ReservedSlots)
	}

	for reserved < ReserveSlots {
		order := shuffledIndices(gc.RNG, len(gc.Worlds))
		progressed := false
		for _, idx := range order {
			needs := needsPlacementPerWorld[idx]
			if len(needs) == 0 {
				continue
			}
			node := needs[len(needs)-1]
			needsPlacementPerWorld[idx] = needs[:len(needs)-1]
			gc.Worlds[idx].ReservedSlots = append(gc.Worlds[idx].ReservedSlots, node)
			reserved++
			progressed = true
			if reserved >= ReserveSlots {
				break
			}
		}
		if !progressed {
			return
		}
	}
}

// totalReachCheck computes the ever-reachable placeable set under any item
// configuration: grant the full pool plus max Spirit Light to a cloned
// world, then iterate reach + preplacement collection to a fixpoint (spec
// section 4.9).
func totalReachCheck(graph Graph, world *World, spawn Node) (reachable, unreachable []Node, err error) {
	clone := world.Clone()
	pool := world.Pool.Inventory()
	pool.Each(func(item Item, n uint16) {
		clone.GrantPlayer(item, n)
	})
	clone.GrantPlayer(SpiritLight(math.MaxUint16), 1)

	var reached []Node
	for {
		reached = graph.ReachedLocations(clone.Player, spawn, clone.Ubers)
		progressed := false
		for _, n := range reached {
			state, hasState := n.UberState()
			if hasState && clone.CollectPreplacements(state) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	seen := make(map[int]bool, len(reached))
	for _, n := range reached {
		if n.CanPlace() {
			reachable = append(reachable, n)
			seen[n.Index()] = true
		}
	}

	all := graph.AllNodes()
	for _, n := range all {
		if n.CanPlace() && !seen[n.Index()] {
			unreachable = append(unreachable, n)
		}
	}

	return reachable, unreachable, nil
}

func spawnNameOrDefault(input WorldInput) string {
	if input.SpawnName != "" {
		return input.SpawnName
	}
	return DefaultSpawn
}

// unreachedIdentifiers lists every placeable node's identifier that has not
// yet received a real placement, a placeholder, or a collected preplacement
// (spec section 4.7 step 3's "Failed to reach all locations" diagnostic).
func unreachedIdentifiers(gc *GeneratorContext) []string {
	var out []string
	for _, wc := range gc.Worlds {
		for _, n := range wc.ReachableLocations {
			if wc.IsPlaced(n) {
				continue
			}
			placeholdered := false
			for _, p := range wc.Placeholders {
				if p.Index() == n.Index() {
					placeholdered = true
					break
				}
			}
			if placeholdered {
				continue
			}
			out = append(out, n.Identifier())
		}
	}
	return out
}

// Generator adapts GeneratePlacements to the shared procgen.Generator
// contract, so the core can be driven the same way every other generator in
// this module is.
type Generator struct {
	Settings Settings
	Log      *logrus.Entry
}

// Generate implements procgen.Generator.
func (g *Generator) Generate(seed int64, params procgen.GenerationParams) (interface{}, error) {
	rng := rand.New(rand.NewSource(seed))
	return GeneratePlacements(rng, g.Settings, g.Log)
}

// Validate implements procgen.Generator. It checks only that no placement
// with a node at a shop slot holds Spirit Light (P2); coverage (P1) and pool
// accounting (P5) are not checked.
func (g *Generator) Validate(result interface{}) error {
	placements, ok := result.([][]Placement)
	if !ok {
		return errContradiction("unexpected result type from seed generator")
	}

	for _, worldPlacements := range placements {
		for _, p := range worldPlacements {
			if p.Node != nil && p.UberState.IsShop() && p.Item.Kind == ItemSpiritLight {
				return errContradiction("Spirit Light placed in a shop slot")
			}
		}
	}
	return nil
}
