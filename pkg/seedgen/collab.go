package seedgen

import "math/rand"

// InventoryAlternative is one way of satisfying a Requirement: the
// Inventory needed alongside the orb cost of using it.
type InventoryAlternative struct {
	Needed  Inventory
	Cost    OrbCost
	OrbSets []int
}

// UnmetRequirement pairs a Requirement with the orb states under which it
// was evaluated, as returned by Graph.ReachedAndProgressions.
type UnmetRequirement struct {
	Requirement Requirement
	BestOrbs    []int
}

// Graph is the external logic-graph collaborator (spec section 6). The core
// never constructs Nodes or evaluates logic itself; it only asks Graph for
// reachability.
type Graph interface {
	// ReachedLocations returns every Node reachable from spawn given
	// player's inventory and the current uber-state map.
	ReachedLocations(player *Player, spawn Node, ubers map[UberIdentifier]float64) []Node

	// ReachedAndProgressions returns the reachable set alongside the
	// unmet requirements blocking further reach, each paired with the
	// orb states under which it was evaluated.
	ReachedAndProgressions(player *Player, spawn Node, ubers map[UberIdentifier]float64) ([]Node, []UnmetRequirement)

	// FindSpawn resolves a named spawn point to its Node.
	FindSpawn(name string) (Node, error)

	// AllNodes returns every node in the graph, reachable or not. Used by
	// relic placement, which must consider every zone-eligible pickup in
	// the world rather than only the currently-reachable subset.
	AllNodes() []Node
}

// Requirement is the external requirements collaborator (spec section 6).
type Requirement interface {
	// ItemsNeeded returns every alternative inventory (with its orb cost)
	// that would satisfy this requirement given the player's current
	// inventory and the set of currently-owned state node indices.
	ItemsNeeded(player *Player, ownedStates []int) []InventoryAlternative
}

// Pool is the external item-pool collaborator (spec section 6): the
// remaining unplaced items for a world, plus a weighted random draw.
type Pool interface {
	// ChooseRandom draws one item (or a Placeholder) from the pool,
	// decrementing it.
	ChooseRandom(rng *rand.Rand) PartialItem

	// Contains reports whether the pool still holds at least the given
	// inventory.
	Contains(inv Inventory) bool

	// Inventory returns a snapshot of everything still in the pool.
	Inventory() Inventory

	// Remove decrements the pool by the given item/count; used when a
	// caller (e.g. the progression solver) commits to a specific draw
	// rather than going through ChooseRandom.
	Remove(item Item, n uint16)

	// SpiritLight returns the total Spirit Light currency this world's
	// pool was configured with.
	SpiritLight() uint16

	// Progressions returns the subset of the pool considered progression
	// items (used by total_reach_check's full-inventory grant).
	Progressions() Inventory
}
