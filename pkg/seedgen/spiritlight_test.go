package seedgen

import (
	"math/rand"
	"testing"
)

func TestSpiritLightAmountsIndexIncrements(t *testing.T) {
	sl := NewSpiritLightAmounts(1000, 10)
	rng := rand.New(rand.NewSource(1))

	for i := uint32(0); i < 5; i++ {
		if sl.Index() != i {
			t.Fatalf("Index() = %d, want %d", sl.Index(), i)
		}
		if _, err := sl.Sample(rng); err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
	}
}

func TestSpiritLightAmountsGrowsWithIndex(t *testing.T) {
	sl := NewSpiritLightAmounts(5000, 20)
	rng := rand.New(rand.NewSource(42))

	first, err := sl.Sample(rng)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	for i := 0; i < 18; i++ {
		if _, err := sl.Sample(rng); err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
	}
	last, err := sl.Sample(rng)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if last <= first {
		t.Errorf("expected later samples to be worth more on average: first=%d last=%d", first, last)
	}
}

func TestSpiritLightAmountsDeterministic(t *testing.T) {
	sl1 := NewSpiritLightAmounts(2000, 15)
	sl2 := NewSpiritLightAmounts(2000, 15)
	rng1 := rand.New(rand.NewSource(7))
	rng2 := rand.New(rand.NewSource(7))

	for i := 0; i < 10; i++ {
		v1, err := sl1.Sample(rng1)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		v2, err := sl2.Sample(rng2)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		if v1 != v2 {
			t.Errorf("sample %d diverged: %d vs %d", i, v1, v2)
		}
	}
}
