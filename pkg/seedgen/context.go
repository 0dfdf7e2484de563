package seedgen

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// World is a per-world snapshot: the shared logic graph, the mutable
// player, the mutable uber-state map, the shared item pool, and any
// preplacements granted automatically when their coordinate is collected.
type World struct {
	Graph  Graph
	Player *Player
	Ubers  map[UberIdentifier]float64

	Pool          Pool
	Preplacements map[UberState][]Item
}

// NewWorld builds an empty world snapshot around the given graph and pool.
func NewWorld(graph Graph, pool Pool) *World {
	return &World{
		Graph:         graph,
		Player:        NewPlayer(),
		Ubers:         make(map[UberIdentifier]float64),
		Pool:          pool,
		Preplacements: make(map[UberState][]Item),
	}
}

// GrantPlayer grants n units of item to the world's player.
func (w *World) GrantPlayer(item Item, n uint16) {
	w.Player.Grant(item, n)
}

// CollectPreplacements grants every item preplaced at state and reports
// whether any were collected.
func (w *World) CollectPreplacements(state UberState) bool {
	items, ok := w.Preplacements[state]
	if !ok || len(items) == 0 {
		return false
	}
	for _, item := range items {
		w.GrantPlayer(item, 1)
	}
	return true
}

// Clone returns an independent copy of the world suitable for a speculative
// reach check (total_reach_check, the progression solver's lookahead) that
// must not mutate the live state.
func (w *World) Clone() *World {
	clone := &World{
		Graph:         w.Graph,
		Player:        &Player{Inventory: w.Player.Inventory.Clone(), MaxHealth: w.Player.MaxHealth, MaxEnergy: w.Player.MaxEnergy},
		Ubers:         make(map[UberIdentifier]float64, len(w.Ubers)),
		Pool:          w.Pool,
		Preplacements: w.Preplacements,
	}
	for k, v := range w.Ubers {
		clone.Ubers[k] = v
	}
	return clone
}

// WorldContext is a world's mutable placement-time state (spec section 3,
// C3).
type WorldContext struct {
	World      *World
	PlayerName string
	Spawn      Node

	Placements  []Placement
	Placeholders []Node // stack: append/pop from the end

	CollectedPreplacements map[int]bool // by node index

	SpawnSlots []Node

	ReachableLocations   []Node
	UnreachableLocations []Node

	SpiritLightRNG SpiritLightAmounts

	// ReservedSlots is this world's share of the globally-topped-up
	// reserved-slot pool (spec section 4.9 step 5), consumed by forced
	// placement before falling back to placeholders.
	ReservedSlots []Node

	log *logrus.Entry
}

// PushPlaceholder records node as a deferred reachable slot.
func (wc *WorldContext) PushPlaceholder(node Node) {
	wc.Placeholders = append(wc.Placeholders, node)
}

// PopPlaceholder removes and returns the most recently pushed placeholder,
// or nil if none remain.
func (wc *WorldContext) PopPlaceholder() Node {
	n := len(wc.Placeholders)
	if n == 0 {
		return nil
	}
	node := wc.Placeholders[n-1]
	wc.Placeholders = wc.Placeholders[:n-1]
	return node
}

// PopReserved removes and returns a reserved slot, or nil if none remain.
func (wc *WorldContext) PopReserved() Node {
	n := len(wc.ReservedSlots)
	if n == 0 {
		return nil
	}
	node := wc.ReservedSlots[n-1]
	wc.ReservedSlots = wc.ReservedSlots[:n-1]
	return node
}

// MarkPlaced records that node has received a real placement (used to keep
// needs_placement from re-offering it).
func (wc *WorldContext) MarkPlaced(node Node) {
	if wc.CollectedPreplacements == nil {
		wc.CollectedPreplacements = make(map[int]bool)
	}
	wc.CollectedPreplacements[node.Index()] = true
}

// IsPlaced reports whether node has already received a real placement.
func (wc *WorldContext) IsPlaced(node Node) bool {
	return wc.CollectedPreplacements[node.Index()]
}

// IsHeld reports whether node is already sitting in this world's placeholder
// stack or reserved-slot stack, i.e. it is buffered but not yet placed.
// needs_placement must exclude held nodes the same way it excludes placed
// ones, or a buffered node keeps getting re-offered every iteration until it
// ends up placed twice (spec section 4.9 step 4).
func (wc *WorldContext) IsHeld(node Node) bool {
	for _, n := range wc.Placeholders {
		if n.Index() == node.Index() {
			return true
		}
	}
	for _, n := range wc.ReservedSlots {
		if n.Index() == node.Index() {
			return true
		}
	}
	return false
}

// GeneratorContext is the shared, run-scoped state threaded through every
// world's processing: world count, custom display names, the multiworld
// state-index counter, and the RNG handle.
type GeneratorContext struct {
	Worlds      []*WorldContext
	CustomNames map[string]string

	multiworldStateIndex int

	RNG *rand.Rand
	Log *logrus.Entry
}

// NextMultiworldStateIndex returns a fresh, monotonically increasing
// cross-world state index (spec section 5: "increments only occur on
// cross-world placements, in origin/world-loop order").
func (gc *GeneratorContext) NextMultiworldStateIndex() int {
	idx := gc.multiworldStateIndex
	gc.multiworldStateIndex++
	return idx
}

// DisplayName resolves item's display name through the custom-name table.
func (gc *GeneratorContext) DisplayName(item Item) string {
	if name, ok := gc.CustomNames[item.Code]; ok {
		return name
	}
	return item.DisplayName()
}
