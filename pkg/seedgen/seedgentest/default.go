package seedgentest

import "github.com/opd-ai/pathforge/pkg/seedgen"

// DefaultFixture builds a small graph exercising a keystone door, a shop
// slot, a relic-eligible zone, and a chain of item-gated pickups, paired
// with a pool sized to exactly cover its progression-critical items, leaving
// one of the five pickups as a filler Spirit Light slot.
//
// Layout:
//
//	Spawn -> A (free)
//	A -> B, gated on Sword
//	A -> Shop (shop slot, gated on nothing)
//	B -> KeystoneDoor (state, needs 2 Keystones) -> C (relic zone "SunkenMarsh")
//	B -> D, gated on DoubleJump
func DefaultFixture() (*Graph, *Pool) {
	sword := seedgen.Item{Kind: seedgen.ItemSkill, Code: "Sword", Name: "Sword"}
	doubleJump := seedgen.Item{Kind: seedgen.ItemSkill, Code: "DoubleJump", Name: "Double Jump"}
	keystone := seedgen.Keystone()

	spawn := State(0, "Spawn", seedgen.UberIdentifier{Group: 3, ID: 0})
	a := Pickup(1, "A", seedgen.UberIdentifier{Group: 10, ID: 1}, "GladeGrove")
	shop := Pickup(2, "Shop", seedgen.UberIdentifier{Group: 1, ID: 100}, "GladeGrove")
	b := Pickup(3, "B", seedgen.UberIdentifier{Group: 10, ID: 2}, "SunkenMarsh")
	door := State(4, "KeystoneDoor", seedgen.UberIdentifier{Group: 5, ID: 10})
	c := Pickup(5, "C", seedgen.UberIdentifier{Group: 10, ID: 3}, "SunkenMarsh")
	d := Pickup(6, "D", seedgen.UberIdentifier{Group: 10, ID: 4}, "EmberWastes")

	swordReq := &Requirement{Description: "Sword", Needed: oneItem(sword)}
	doubleJumpReq := &Requirement{Description: "DoubleJump", Needed: oneItem(doubleJump)}
	keystoneReq := &Requirement{Description: "2 Keystones", Needed: nItems(keystone, 2)}

	g := NewGraph(spawn)
	g.Connect(spawn, a, nil)
	g.Connect(a, shop, nil)
	g.Connect(a, b, swordReq)
	g.Connect(b, door, nil)
	g.Connect(door, c, keystoneReq)
	g.Connect(b, d, doubleJumpReq)

	pool := seedgen.NewInventory()
	pool.Add(sword, 1)
	pool.Add(doubleJump, 1)
	pool.Add(keystone, 2)

	p := NewPool(pool, 900, oneItem(sword).Merge(oneItem(doubleJump)))

	return g, p
}

func oneItem(item seedgen.Item) seedgen.Inventory {
	inv := seedgen.NewInventory()
	inv.Add(item, 1)
	return inv
}

func nItems(item seedgen.Item, n uint16) seedgen.Inventory {
	inv := seedgen.NewInventory()
	inv.Add(item, n)
	return inv
}
