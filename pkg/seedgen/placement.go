package seedgen

import (
	"fmt"
	"math"

	"github.com/opd-ai/pathforge/pkg/logging"
)

// placeItem is the shared placement primitive (spec section 4.2, C2). origin
// is the world whose node is being filled; target is the world that
// receives the item (they differ only for multiworld cross-placement).
func placeItem(gc *GeneratorContext, origin, target *WorldContext, node Node, wasPlaceholder bool, item Item) error {
	state, hasState := node.UberState()
	if !hasState {
		return fmt.Errorf("node %s has no uber state to place into", node.Identifier())
	}

	if state.IsShop() {
		row, ok := shopPriceTable[state.Identifier]
		if !ok {
			return errShopMissingPrice(state.Identifier)
		}

		price := item.ShopPrice()
		if item.RandomShopPrice() {
			jittered := float64(price) * randFloatRange(gc.RNG, 0.75, 1.25)
			truncated := math.Trunc(jittered)
			if truncated < 0 || truncated > math.MaxUint16 {
				return errOverflow(fmt.Sprintf("shop price for %s", item.DisplayName()), truncated)
			}
			price = uint16(truncated)
		}

		priceSetter := UberStateItem(fmt.Sprintf("%s|int|%d // price for %s", row.PriceUberState, price, row.Label))
		origin.Placements = append(origin.Placements, Placement{
			Node:      nil,
			UberState: SpawnState,
			Item:      priceSetter,
		})
	}

	if origin == target {
		origin.Placements = append(origin.Placements, Placement{
			Node:      node,
			UberState: state,
			Item:      item,
		})
		origin.MarkPlaced(node)
		traceLocation(origin, node, state, item, wasPlaceholder, len(origin.Placeholders))
		return nil
	}

	// Cross-world placement: origin announces the check, target receives
	// the item at a freshly allocated receive-slot coordinate.
	stateIndex := gc.NextMultiworldStateIndex()

	origin.Placements = append(origin.Placements, Placement{
		Node:      node,
		UberState: state,
		Item:      MessageItem(fmt.Sprintf("%s for %s", gc.DisplayName(item), target.PlayerName)),
	})
	origin.Placements = append(origin.Placements, Placement{
		Node:      nil,
		UberState: state,
		Item:      UberStateItem(fmt.Sprintf("%d|%d|bool|true", CrossWorldGroup, stateIndex)),
	})
	origin.MarkPlaced(node)

	target.Placements = append(target.Placements, Placement{
		Node:      nil,
		UberState: UberState{Identifier: UberIdentifier{Group: CrossWorldGroup, ID: stateIndex}},
		Item:      item,
	})
	traceLocation(origin, node, state, item, wasPlaceholder, len(origin.Placeholders))

	return nil
}

// traceLocation logs a completed placement scoped to the node it landed on,
// chaining NodeLogger off the owning world's logger so the line carries
// world/player context alongside the node index.
func traceLocation(origin *WorldContext, node Node, state UberState, item Item, wasPlaceholder bool, placeholdersLeft int) {
	if origin.log == nil {
		return
	}
	entry := logging.NodeLogger(origin.log, node.Index())
	if wasPlaceholder {
		entry.WithFields(map[string]interface{}{
			"uberState":        state.String(),
			"item":             item.String(),
			"placeholdersLeft": placeholdersLeft,
		}).Trace("placed item at placeholder")
		return
	}
	entry.WithFields(map[string]interface{}{
		"uberState": state.String(),
		"item":      item.String(),
	}).Trace("placed item")
}
