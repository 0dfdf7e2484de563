// Package seedgentest provides a small in-memory Graph/Requirement/Pool
// fixture implementing the pkg/seedgen external-collaborator interfaces,
// grounded on pkg/network's mock_server.go/mock_client.go pattern of a
// minimal struct implementing a production interface with exported,
// test-configurable fields.
//
// The fixture graph is a short chain of pickups gated by increasingly
// expensive item requirements, with a keystone door, a shop slot, and a
// relic-eligible zone, so a single generation run exercises every core
// component.
package seedgentest

import (
	"math/rand"
	"sort"

	"github.com/opd-ai/pathforge/pkg/seedgen"
)

// Node is a concrete seedgen.Node for fixture graphs.
type Node struct {
	index      int
	identifier string
	state      seedgen.UberState
	hasState   bool
	zone       string
	hasZone    bool
	canPlace   bool
}

func (n Node) Index() int        { return n.index }
func (n Node) Identifier() string { return n.identifier }
func (n Node) Zone() (string, bool) { return n.zone, n.hasZone }
func (n Node) CanPlace() bool    { return n.canPlace }
func (n Node) UberState() (seedgen.UberState, bool) {
	return n.state, n.hasState
}

// Pickup builds a placeable Node with the given uber identifier.
func Pickup(index int, identifier string, uber seedgen.UberIdentifier, zone string) Node {
	return Node{index: index, identifier: identifier, state: seedgen.UberState{Identifier: uber}, hasState: true, zone: zone, hasZone: zone != "", canPlace: true}
}

// State builds a non-placeable logic node (an Anchor/State gate) used for
// keystone doors and other logic-only coordinates.
func State(index int, identifier string, uber seedgen.UberIdentifier) Node {
	return Node{index: index, identifier: identifier, state: seedgen.UberState{Identifier: uber}, hasState: true, canPlace: false}
}

// edge gates traversal to a Node behind a Requirement.
type edge struct {
	to   Node
	req  *Requirement
}

// Requirement is a fixture seedgen.Requirement: satisfied once the player's
// inventory contains Needed, at zero orb cost.
type Requirement struct {
	Description string
	Needed      seedgen.Inventory
}

// IsMet reports whether player already satisfies this requirement; used
// internally by Graph's BFS (is_met is an external-collaborator concern the
// real requirements engine owns, per spec section 1).
func (r *Requirement) IsMet(player *seedgen.Player) bool {
	return player.Inventory.Contains(r.Needed)
}

// ItemsNeeded implements seedgen.Requirement.
func (r *Requirement) ItemsNeeded(player *seedgen.Player, ownedStates []int) []seedgen.InventoryAlternative {
	return []seedgen.InventoryAlternative{{Needed: r.Needed, OrbSets: []int{0}}}
}

// Graph is a fixture seedgen.Graph: an adjacency list BFS from a single spawn.
type Graph struct {
	spawn Node
	edges map[int][]edge
	nodes map[int]Node
}

// NewGraph builds an empty fixture graph rooted at spawn.
func NewGraph(spawn Node) *Graph {
	return &Graph{spawn: spawn, edges: make(map[int][]edge), nodes: map[int]Node{spawn.Index(): spawn}}
}

// Connect adds a directed edge from `from` to `to`, gated by req (nil means
// unconditional).
func (g *Graph) Connect(from, to Node, req *Requirement) {
	g.nodes[from.Index()] = from
	g.nodes[to.Index()] = to
	g.edges[from.Index()] = append(g.edges[from.Index()], edge{to: to, req: req})
}

// AllNodes returns every node registered via Connect or NewGraph, including
// the spawn, ordered by node index. g.nodes is a map, so range order is
// randomized per run; relic placement shuffles this slice with the run's
// seeded RNG, so an unsorted starting order would make the shuffle's result
// depend on map iteration instead of the seed alone.
func (g *Graph) AllNodes() []seedgen.Node {
	indices := make([]int, 0, len(g.nodes))
	for idx := range g.nodes {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([]seedgen.Node, 0, len(indices))
	for _, idx := range indices {
		out = append(out, g.nodes[idx])
	}
	return out
}

func (g *Graph) FindSpawn(name string) (seedgen.Node, error) {
	return g.spawn, nil
}

func (g *Graph) ReachedLocations(player *seedgen.Player, spawn seedgen.Node, ubers map[seedgen.UberIdentifier]float64) []seedgen.Node {
	reached, _ := g.traverse(player)
	return reached
}

func (g *Graph) ReachedAndProgressions(player *seedgen.Player, spawn seedgen.Node, ubers map[seedgen.UberIdentifier]float64) ([]seedgen.Node, []seedgen.UnmetRequirement) {
	reached, unmet := g.traverse(player)
	return reached, unmet
}

// traverse runs a simple reachability fixpoint: repeatedly walk every edge
// from every currently-reached node, following edges whose requirement is
// already met, until no new node is added. Unmet edges directly reachable
// from the current frontier become progressions.
func (g *Graph) traverse(player *seedgen.Player) ([]seedgen.Node, []seedgen.UnmetRequirement) {
	visited := map[int]bool{g.spawn.Index(): true}
	frontier := []Node{g.spawn}
	unmetSeen := map[*Requirement]bool{}
	var unmetOrder []*Requirement

	for len(frontier) > 0 {
		var next []Node
		for _, n := range frontier {
			for _, e := range g.edges[n.Index()] {
				if visited[e.to.Index()] {
					continue
				}
				if e.req == nil || e.req.IsMet(player) {
					visited[e.to.Index()] = true
					next = append(next, e.to)
				} else if !unmetSeen[e.req] {
					unmetSeen[e.req] = true
					unmetOrder = append(unmetOrder, e.req)
				}
			}
		}
		frontier = next
	}

	// visited is a map, so range order over it is randomized; sort by node
	// index to keep reachability output deterministic run to run (feeds
	// directly into shuffle-order-sensitive placement code).
	indices := make([]int, 0, len(visited))
	for idx := range visited {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	reached := make([]seedgen.Node, 0, len(indices))
	for _, idx := range indices {
		reached = append(reached, g.nodes[idx])
	}

	unmet := make([]seedgen.UnmetRequirement, 0, len(unmetOrder))
	for _, req := range unmetOrder {
		unmet = append(unmet, seedgen.UnmetRequirement{Requirement: req, BestOrbs: []int{0}})
	}

	return reached, unmet
}

// Pool is a fixture seedgen.Pool backed by a plain inventory.
type Pool struct {
	inv         seedgen.Inventory
	spiritLight uint16
	progressions seedgen.Inventory
}

// NewPool builds a pool from the given inventory and Spirit Light total.
func NewPool(inv seedgen.Inventory, spiritLight uint16, progressions seedgen.Inventory) *Pool {
	return &Pool{inv: inv.Clone(), spiritLight: spiritLight, progressions: progressions}
}

func (p *Pool) ChooseRandom(rng *rand.Rand) seedgen.PartialItem {
	var items []seedgen.Item
	p.inv.Each(func(item seedgen.Item, n uint16) {
		for i := uint16(0); i < n; i++ {
			items = append(items, item)
		}
	})
	if len(items) == 0 {
		return seedgen.PartialItem{IsPlaceholder: true}
	}
	if rng.Float64() < 0.15 {
		return seedgen.PartialItem{IsPlaceholder: true}
	}
	chosen := items[rng.Intn(len(items))]
	p.Remove(chosen, 1)
	return seedgen.PartialItem{Item: chosen}
}

func (p *Pool) Contains(inv seedgen.Inventory) bool {
	return p.inv.Contains(inv)
}

func (p *Pool) Inventory() seedgen.Inventory {
	return p.inv.Clone()
}

func (p *Pool) Remove(item seedgen.Item, n uint16) {
	p.inv.Remove(item, n)
}

func (p *Pool) SpiritLight() uint16 {
	return p.spiritLight
}

func (p *Pool) Progressions() seedgen.Inventory {
	return p.progressions
}
