package seedgen

import (
	"math"
	"math/rand"
)

// SpiritLightAmounts computes a deterministic series of Spirit Light
// currency amounts following a shallow-parabola profile (spec section 4.1):
// later samples are worth more, with a noise band preventing perfect
// predictability.
type SpiritLightAmounts struct {
	factor float64
	low    float64
	high   float64
	index  uint32
}

// NewSpiritLightAmounts builds a sampler for distributing poolTotal Spirit
// Light across slots pickups, using the default 0.75..1.25 noise band.
func NewSpiritLightAmounts(poolTotal, slots float64) SpiritLightAmounts {
	return NewSpiritLightAmountsWithNoise(poolTotal, slots, 0.75, 1.25)
}

// NewSpiritLightAmountsWithNoise is NewSpiritLightAmounts with an explicit
// noise range.
func NewSpiritLightAmountsWithNoise(poolTotal, slots, low, high float64) SpiritLightAmounts {
	var factor float64
	if slots > 0 {
		// closed form for sum_{i=1}^{slots} i^2
		denom := slots*slots*slots/3 + slots*slots/2 + slots/6
		if denom != 0 {
			factor = (poolTotal - slots*50) / denom
		}
	}
	return SpiritLightAmounts{factor: factor, low: low, high: high}
}

// Sample returns round(factor*index^2 + 50*U[low,high]) as uint16, then
// increments index (invariant I5: index increases by exactly one per call).
// Returns ErrNumericOverflow if the rounded value exceeds uint16's range.
func (s *SpiritLightAmounts) Sample(rng *rand.Rand) (uint16, error) {
	noise := randFloatRange(rng, s.low, s.high)
	value := math.Round(s.factor*float64(s.index)*float64(s.index) + 50*noise)
	s.index++

	if value < 0 {
		value = 0
	}
	if value > math.MaxUint16 {
		return 0, errOverflow("spirit light sample", value)
	}
	return uint16(value), nil
}

// Index returns the next sample's index, for diagnostics/tests.
func (s *SpiritLightAmounts) Index() uint32 {
	return s.index
}
