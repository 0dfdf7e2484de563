package seedgen

// Static configuration tables (spec section 6: "the implementation treats
// these as configuration"). Values below are a representative fantasy-genre
// domain instance, shaped like the real randomizer's tables but independent
// of any specific game's exact coordinates.

// RelicZones lists the zones eligible to receive a single Relic bonus item
// under the Relics goal mode (spec section 4.3).
var RelicZones = []string{
	"GladeGrove",
	"SunkenMarsh",
	"EmberWastes",
	"HollowGrotto",
	"WindsweptReach",
	"SilentDepths",
}

// shopPriceRow is one entry of the SHOP_PRICES table: a shop location's
// human-readable label and the UberState coordinate its price is written to.
type shopPriceRow struct {
	Label           string
	PriceUberState  UberIdentifier
}

// shopPriceTable maps a shop slot's own identifier to its pricing row.
var shopPriceTable = map[UberIdentifier]shopPriceRow{
	{Group: 1, ID: 100}: {Label: "Twillen's Shop Slot 1", PriceUberState: UberIdentifier{Group: 1, ID: 9000}},
	{Group: 1, ID: 101}: {Label: "Twillen's Shop Slot 2", PriceUberState: UberIdentifier{Group: 1, ID: 9001}},
	{Group: 1, ID: 102}: {Label: "Twillen's Shop Slot 3", PriceUberState: UberIdentifier{Group: 1, ID: 9002}},
	{Group: 2, ID: 100}: {Label: "Opher's Shop Slot 1", PriceUberState: UberIdentifier{Group: 2, ID: 9000}},
	{Group: 2, ID: 101}: {Label: "Opher's Shop Slot 2", PriceUberState: UberIdentifier{Group: 2, ID: 9001}},
	{Group: 2, ID: 102}: {Label: "Opher's Shop Slot 3", PriceUberState: UberIdentifier{Group: 2, ID: 9002}},
	{Group: 4, ID: 100}: {Label: "Rebuild the Glades Shop Slot 1", PriceUberState: UberIdentifier{Group: 4, ID: 9000}},
}

// keystoneDoor is one entry of the KEYSTONE_DOORS table: a door's identifier
// and the number of keystones it demands.
type keystoneDoor struct {
	Identifier UberIdentifier
	Keystones  int
}

// KeystoneDoors lists every keydoor the core must preempt for (spec section 4.4).
var KeystoneDoors = []keystoneDoor{
	{Identifier: UberIdentifier{Group: 5, ID: 10}, Keystones: 2},
	{Identifier: UberIdentifier{Group: 5, ID: 20}, Keystones: 4},
	{Identifier: UberIdentifier{Group: 5, ID: 30}, Keystones: 5},
	{Identifier: UberIdentifier{Group: 5, ID: 40}, Keystones: 3},
}

// keystoneDemand returns the keystone count demanded by identifier, or 0 if
// it does not name a keydoor.
func keystoneDemand(id UberIdentifier) int {
	for _, door := range KeystoneDoors {
		if door.Identifier == id {
			return door.Keystones
		}
	}
	return 0
}

// ReserveSlots is the minimum number of globally-reserved slots the main
// loop tries to maintain while unreached locations remain (spec section 4.9
// step 5).
const ReserveSlots = 2

// DefaultSpawn is the spawn point name used when settings do not request a
// custom spawn.
const DefaultSpawn = "MarshSpawn.Main"
