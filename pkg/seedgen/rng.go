package seedgen

import "math/rand"

// shuffle performs an in-place Fisher-Yates shuffle using rng. Never
// substitute rand.Shuffle's own algorithm selection for this: the core's
// determinism guarantee (spec section 5 / section 9) requires a fixed,
// documented shuffle consuming RNG state in a known order.
func shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// shuffledIndices returns a freshly shuffled [0, n) permutation.
func shuffledIndices(rng *rand.Rand, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	shuffle(rng, idx)
	return idx
}

// weightedChoice picks an index into weights proportional to its value,
// using a prefix-sum sampler (spec section 9: "reservoir-free prefix-sum
// sampler keyed on f32 weights"). Ties and degenerate all-minimum weights
// still resolve via the RNG draw rather than always returning index 0.
func weightedChoice(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	target := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}

// randFloatRange draws a uniform float in [low, high).
func randFloatRange(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}
