package seedgen

import (
	"errors"
	"fmt"
)

// Sentinel error kinds (spec section 7). Wrap one of these with fmt.Errorf's
// %w so callers can branch with errors.Is without string matching.
var (
	// ErrLogicExhaustion: the progression solver found no viable
	// candidate itemset while reachable slots remain unfilled.
	ErrLogicExhaustion = errors.New("logic exhaustion")

	// ErrSlotExhaustion: forced placement could not obtain a reserved or
	// placeholder slot for an item that must be placed now.
	ErrSlotExhaustion = errors.New("slot exhaustion")

	// ErrConfigurationMismatch: a shop slot has no SHOP_PRICES entry.
	ErrConfigurationMismatch = errors.New("configuration mismatch")

	// ErrNumericOverflow: a Spirit Light sample or shop price exceeded
	// uint16's range.
	ErrNumericOverflow = errors.New("numeric overflow")

	// ErrSolverContradiction: items_needed reported a requirement already
	// satisfied, i.e. missing-items computed empty. Indicates a bug in
	// the requirements collaborator, not in the core.
	ErrSolverContradiction = errors.New("solver contradiction")
)

func errNotEnoughSlots(itemName string) error {
	return fmt.Errorf("%w: not enough slots to place forced progression %s", ErrSlotExhaustion, itemName)
}

func errShopMissingPrice(id UberIdentifier) error {
	return fmt.Errorf("%w: shop location %s without prices row", ErrConfigurationMismatch, id)
}

func errOverflow(what string, value float64) error {
	return fmt.Errorf("%w: %s overflows uint16: %v", ErrNumericOverflow, what, value)
}

func errContradiction(reqDesc string) error {
	return fmt.Errorf("%w: could not determine which items are missing for %s", ErrSolverContradiction, reqDesc)
}

func errFailedToReachAnything() error {
	return fmt.Errorf("%w: failed to reach anything from spawn", ErrLogicExhaustion)
}

func errFailedToReachAll(unreached []string) error {
	return fmt.Errorf("%w: failed to reach all locations: %s", ErrLogicExhaustion, formatIdentifiers(unreached))
}

// formatIdentifiers truncates a long identifier list to 20 entries with a
// "... (N total)" suffix, matching original_source/generator.rs's
// format_identifiers used when reporting unreached locations.
func formatIdentifiers(identifiers []string) string {
	total := len(identifiers)
	list := identifiers
	truncated := false
	if total > 20 {
		list = identifiers[:20]
		truncated = true
	}

	out := ""
	for i, id := range list {
		if i > 0 {
			out += ", "
		}
		out += id
	}
	if truncated {
		out += fmt.Sprintf("... (%d total)", total)
	}
	return out
}
