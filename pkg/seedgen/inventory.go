package seedgen

import (
	"fmt"
	"sort"
)

// Inventory is a multiset mapping Item to a unit count. The zero value is an
// empty, usable inventory.
type Inventory struct {
	counts map[Item]uint16
}

// NewInventory returns an empty inventory.
func NewInventory() Inventory {
	return Inventory{counts: make(map[Item]uint16)}
}

// Add increases the count of item by n, initializing the backing map lazily
// so the zero value stays usable.
func (inv *Inventory) Add(item Item, n uint16) {
	if inv.counts == nil {
		inv.counts = make(map[Item]uint16)
	}
	inv.counts[item] += n
}

// Remove decreases item's count by n, floored at zero, pruning the entry
// once it reaches zero.
func (inv *Inventory) Remove(item Item, n uint16) {
	if inv.counts == nil {
		return
	}
	have := inv.counts[item]
	if n >= have {
		delete(inv.counts, item)
		return
	}
	inv.counts[item] = have - n
}

// Count returns the current count of item.
func (inv Inventory) Count(item Item) uint16 {
	return inv.counts[item]
}

// Each calls fn once per distinct item with its count, in a fixed order
// (sorted by the items' field values) so that callers feeding the result
// into seeded shuffles stay deterministic.
func (inv Inventory) Each(fn func(item Item, count uint16)) {
	items := make([]Item, 0, len(inv.counts))
	keys := make(map[Item]string, len(inv.counts))
	for item := range inv.counts {
		items = append(items, item)
		keys[item] = fmt.Sprintf("%#v", item)
	}
	sort.Slice(items, func(i, j int) bool { return keys[items[i]] < keys[items[j]] })
	for _, item := range items {
		fn(item, inv.counts[item])
	}
}

// ItemCount returns the sum of all counts.
func (inv Inventory) ItemCount() int {
	total := 0
	for _, n := range inv.counts {
		total += int(n)
	}
	return total
}

// WorldItemCount returns ItemCount excluding Spirit Light, which does not
// consume a "real" progression slot the way skills/shards/resources do.
func (inv Inventory) WorldItemCount() int {
	total := 0
	for item, n := range inv.counts {
		if item.Kind == ItemSpiritLight {
			continue
		}
		total += int(n)
	}
	return total
}

// Cost returns the weighting cost used by the progression solver: the sum of
// each item's shop price (or 1.0 for unpriced items) times its count, with a
// floor of 1.0 so division by Cost never explodes.
func (inv Inventory) Cost() float32 {
	var cost float32
	for item, n := range inv.counts {
		price := float32(item.ShopPrice())
		if price == 0 {
			price = 1
		}
		cost += price * float32(n)
	}
	if cost < 1 {
		cost = 1
	}
	return cost
}

// Contains reports whether inv has at least as many of every item as other.
func (inv Inventory) Contains(other Inventory) bool {
	for item, n := range other.counts {
		if inv.counts[item] < n {
			return false
		}
	}
	return true
}

// Merge returns a new inventory holding the sum of inv and other.
func (inv Inventory) Merge(other Inventory) Inventory {
	out := NewInventory()
	for item, n := range inv.counts {
		out.Add(item, n)
	}
	for item, n := range other.counts {
		out.Add(item, n)
	}
	return out
}

// Clone returns an independent copy of inv.
func (inv Inventory) Clone() Inventory {
	out := NewInventory()
	for item, n := range inv.counts {
		out.counts[item] = n
	}
	return out
}

// MissingItems returns a new inventory holding what needed asks for beyond
// what inv already owns; needed itself is not modified. Items fully covered
// by inv are left out entirely.
func (inv Inventory) MissingItems(needed Inventory) Inventory {
	out := NewInventory()
	for item, n := range needed.counts {
		have := inv.counts[item]
		if have >= n {
			continue
		}
		out.Add(item, n-have)
	}
	return out
}

// Player holds a world's mutable inventory and derived resource flags.
type Player struct {
	Inventory Inventory

	// MaxHealth and MaxEnergy track the resource totals granted so far.
	// Grant derives them from Resource(Health)/Resource(Energy) grants:
	// 5 health per Health item and 1 energy per Energy item.
	MaxHealth uint16
	MaxEnergy uint16
}

// NewPlayer returns an empty player.
func NewPlayer() *Player {
	return &Player{Inventory: NewInventory()}
}

// Grant adds n units of item to the player's inventory, updating derived
// resource totals for Health/Energy.
func (p *Player) Grant(item Item, n uint16) {
	p.Inventory.Add(item, n)
	if item.Kind == ItemResource {
		switch item.ResourceKind {
		case ResourceHealth:
			p.MaxHealth += 5 * n
		case ResourceEnergy:
			p.MaxEnergy += n
		}
	}
}

// MissingForOrbs returns the inventory still missing for a requirement
// alternative under the given orb state. needed is expected to already have
// the player's owned items subtracted (see MissingItems). Orb costs are not
// modelled: orbCost and orbs are ignored and a copy of needed is returned.
func (p *Player) MissingForOrbs(needed Inventory, orbCost OrbCost, orbs int) Inventory {
	return needed.Clone()
}

// OrbCost is an opaque cost descriptor attached to a requirement alternative
// by the external requirements collaborator.
type OrbCost struct {
	Energy float32
	Health float32
}
