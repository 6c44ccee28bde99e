package world

import "testing"

func TestRandIsDeterministicForAGivenSeed(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 100; i++ {
		if a.NextInt() != b.NextInt() {
			t.Fatalf("expected identical sequences from identical seeds at step %d", i)
		}
	}
}

func TestSetSeedResetsTheSequence(t *testing.T) {
	r := NewRand(1)
	first := make([]int32, 10)
	for i := range first {
		first[i] = r.NextInt()
	}
	r.SetSeed(1)
	for i := range first {
		if got := r.NextInt(); got != first[i] {
			t.Fatalf("expected SetSeed to reset the sequence, step %d: got %d want %d", i, got, first[i])
		}
	}
}

func TestNextIntBoundedStaysInRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.NextIntBounded(17)
		if v < 0 || v >= 17 {
			t.Fatalf("NextIntBounded(17) out of range: %d", v)
		}
	}
}

func TestNextIntBoundedPowerOfTwoStaysInRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.NextIntBounded(16)
		if v < 0 || v >= 16 {
			t.Fatalf("NextIntBounded(16) out of range: %d", v)
		}
	}
}

func TestNextDoubleStaysInUnitRange(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 1000; i++ {
		v := r.NextDouble()
		if v < 0 || v >= 1 {
			t.Fatalf("NextDouble out of [0,1): %v", v)
		}
	}
}

func TestNextGaussianProducesBothSignsOverManySamples(t *testing.T) {
	r := NewRand(9)
	var pos, neg bool
	for i := 0; i < 200; i++ {
		v := r.NextGaussian()
		if v > 0 {
			pos = true
		} else if v < 0 {
			neg = true
		}
	}
	if !pos || !neg {
		t.Fatalf("expected a mix of positive and negative gaussian samples over 200 draws")
	}
}

func TestNextChoicePicksAnElementFromTheSlice(t *testing.T) {
	r := NewRand(5)
	options := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[NextChoice(r, options)] = true
	}
	for _, o := range options {
		if !seen[o] {
			t.Fatalf("expected NextChoice to eventually pick %q over 100 draws", o)
		}
	}
}
