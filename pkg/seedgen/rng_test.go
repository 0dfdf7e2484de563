package seedgen

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := []int{0, 1, 2, 3, 4, 5, 6}
	orig := append([]int(nil), s...)

	shuffle(rng, s)

	got := append([]int(nil), s...)
	sort.Ints(got)
	sort.Ints(orig)
	for i := range got {
		if got[i] != orig[i] {
			t.Fatalf("shuffle changed the element set: got %v, want permutation of %v", s, orig)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	s1 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s2 := append([]int(nil), s1...)

	shuffle(rand.New(rand.NewSource(42)), s1)
	shuffle(rand.New(rand.NewSource(42)), s2)

	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("same seed produced different shuffles: %v vs %v", s1, s2)
		}
	}
}

func TestShuffledIndicesCoversRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	idx := shuffledIndices(rng, 5)
	seen := make(map[int]bool)
	for _, i := range idx {
		seen[i] = true
	}
	for i := 0; i < 5; i++ {
		if !seen[i] {
			t.Errorf("index %d missing from shuffledIndices output %v", i, idx)
		}
	}
}

func TestWeightedChoiceFavorsHeavierWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	weights := []float64{0, 100, 0}
	for i := 0; i < 20; i++ {
		if got := weightedChoice(rng, weights); got != 1 {
			t.Fatalf("weightedChoice = %d, want 1 (only nonzero weight)", got)
		}
	}
}

func TestWeightedChoiceDegenerateZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	weights := []float64{0, 0, 0}
	got := weightedChoice(rng, weights)
	if got < 0 || got >= len(weights) {
		t.Fatalf("weightedChoice with all-zero weights returned out-of-range index %d", got)
	}
}

func TestRandFloatRangeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		v := randFloatRange(rng, 0.75, 1.25)
		if v < 0.75 || v >= 1.25 {
			t.Fatalf("randFloatRange returned out-of-bounds value %v", v)
		}
	}
}
