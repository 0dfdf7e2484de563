// Package seedgen implements the placement core of the seed generator: the
// fixed-point loop that alternates between reachability analysis, random
// filling of open slots, and forced placement of progression items, until
// every placeable location in every world holds exactly one item.
package seedgen

import "fmt"

// ItemKind classifies the tagged-union Item variant.
type ItemKind int

const (
	ItemSkill ItemKind = iota
	ItemResource
	ItemShard
	ItemSpiritLight
	ItemBonus
	ItemUberState
	ItemMessage
)

// ResourceKind enumerates the Resource item sub-variants.
type ResourceKind int

const (
	ResourceHealth ResourceKind = iota
	ResourceEnergy
	ResourceKeystone
	ResourceOre
	ResourceShardSlot
)

// Item is a tagged variant over the placeable game items described in spec
// section 3. Items compare by value, so two Items built from the same fields
// are equal and usable as map keys (Inventory relies on this).
type Item struct {
	Kind ItemKind

	// Code is the opaque canonical identifier used in the wire format and
	// as the custom-name lookup key.
	Code string

	// Name is the default display name, overridable via GeneratorContext's
	// custom name table.
	Name string

	// ResourceKind is meaningful only when Kind == ItemResource.
	ResourceKind ResourceKind

	// ShardKind names the shard when Kind == ItemShard.
	ShardKind string

	// BonusKind names the bonus item when Kind == ItemBonus (e.g. "Relic").
	BonusKind string

	// SpiritLightAmount holds the currency amount when Kind == ItemSpiritLight.
	SpiritLightAmount uint16

	// Payload carries the UberState wire string for ItemUberState, or the
	// display text for ItemMessage.
	Payload string
}

// SpiritLight constructs a Spirit Light currency item worth amount.
func SpiritLight(amount uint16) Item {
	return Item{Kind: ItemSpiritLight, Code: "SpiritLight", Name: "Spirit Light", SpiritLightAmount: amount}
}

// UberStateItem constructs a synthetic state-setter item with the given wire payload.
func UberStateItem(payload string) Item {
	return Item{Kind: ItemUberState, Code: "UberState", Payload: payload}
}

// MessageItem constructs a synthetic display-message item.
func MessageItem(text string) Item {
	return Item{Kind: ItemMessage, Code: "Message", Payload: text}
}

// Resource constructs a Resource item of the given sub-kind.
func Resource(kind ResourceKind, name string) Item {
	return Item{Kind: ItemResource, Code: name, Name: name, ResourceKind: kind}
}

// Keystone is the canonical Resource(Keystone) item, used frequently enough
// by the core (force_keystones, cost accounting) to warrant a constructor.
func Keystone() Item {
	return Resource(ResourceKeystone, "Keystone")
}

// ShopPrice returns the base shop price for item, in Spirit Light.
//
// Only a handful of kinds carry an inherent price; everything else is free
// (never sold), matching the original's treatment of skills/shards/resources
// as the priced catalog and Spirit Light/messages/state-setters as unpriced.
func (i Item) ShopPrice() uint16 {
	switch i.Kind {
	case ItemSkill:
		return 300
	case ItemShard:
		return 250
	case ItemBonus:
		return 400
	case ItemResource:
		switch i.ResourceKind {
		case ResourceHealth, ResourceEnergy:
			return 150
		case ResourceKeystone:
			return 100
		case ResourceOre:
			return 50
		case ResourceShardSlot:
			return 200
		}
	}
	return 0
}

// RandomShopPrice reports whether this item's shop price should be jittered
// by the 0.75..1.25 noise band (spec section 4.2 step 1). Spirit Light and
// synthetic items are never sold, so this only matters for the priced kinds.
func (i Item) RandomShopPrice() bool {
	switch i.Kind {
	case ItemSkill, ItemShard, ItemBonus, ItemResource:
		return true
	default:
		return false
	}
}

// IsMultiworldSpread reports whether this item participates in cross-world
// placement (spec section 4.2 step 4). Spirit Light and per-world synthetic
// setters stay local to the world that grants them.
func (i Item) IsMultiworldSpread() bool {
	switch i.Kind {
	case ItemSpiritLight, ItemUberState, ItemMessage:
		return false
	default:
		return true
	}
}

// DisplayName resolves to Name unless overridden.
func (i Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Code
}

// String renders the wire-format item payload: the raw Payload for UberState
// setters, "message|<text>" for messages, "SpiritLight|<amount>" for Spirit
// Light, and "<code>" for everything else.
func (i Item) String() string {
	switch i.Kind {
	case ItemUberState:
		return i.Payload
	case ItemMessage:
		return fmt.Sprintf("message|%s", i.Payload)
	case ItemSpiritLight:
		return fmt.Sprintf("SpiritLight|%d", i.SpiritLightAmount)
	default:
		return i.Code
	}
}

// UberIdentifier is the (group, id) half of an UberState coordinate.
type UberIdentifier struct {
	Group int
	ID    int
}

func (u UberIdentifier) String() string {
	return fmt.Sprintf("%d|%d", u.Group, u.ID)
}

// UberState is a (identifier, value) coordinate identifying a game-state
// flag or pickup location. Two UberStates are equal iff their identifiers
// and values are equal.
type UberState struct {
	Identifier UberIdentifier
	Value      float64
}

// SpawnState is the distinguished spawn coordinate (3,0).
var SpawnState = UberState{Identifier: UberIdentifier{Group: 3, ID: 0}}

// CrossWorldGroup is the uber group used for multiworld receive-slot
// coordinates: (12, state_index).
const CrossWorldGroup = 12

// IsShop reports whether this coordinate names a shop slot, i.e. whether its
// identifier has an entry in the SHOP_PRICES table.
func (u UberState) IsShop() bool {
	_, ok := shopPriceTable[u.Identifier]
	return ok
}

func (u UberState) String() string {
	return fmt.Sprintf("%s|%v", u.Identifier, u.Value)
}

// Node is an element of the logic graph: Pickup, Quest, State, Anchor, etc.
// The core only ever receives Nodes from the Graph collaborator (spec
// section 6) and stores them by value/handle; it never constructs them.
type Node interface {
	// Index is a stable, 0-based dense index.
	Index() int

	// Identifier is a human-readable stable name, used in diagnostics.
	Identifier() string

	// UberState returns the node's coordinate, if it has one (Pickup/Quest
	// and some States do).
	UberState() (UberState, bool)

	// Zone returns the node's zone, if any.
	Zone() (string, bool)

	// CanPlace reports whether this node may receive a generated item,
	// i.e. whether it is a Pickup or Quest.
	CanPlace() bool
}

// PartialItem is the result of a pool draw: either a deferred Placeholder or
// a concrete Item.
type PartialItem struct {
	IsPlaceholder bool
	Item          Item
}

// Placement ties an item to a world-state coordinate. Node is nil for
// synthetic entries (shop price-setters, spawn-slot items, cross-world proxies).
type Placement struct {
	Node      Node
	UberState UberState
	Item      Item
}

// String renders the wire placement line: "<uber_group>|<uber_id>|<code>".
func (p Placement) String() string {
	return fmt.Sprintf("%s|%s", p.UberState.Identifier, p.Item)
}
