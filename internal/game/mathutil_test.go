package game

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Expected clamp(%d, %d, %d) to be %d, got %d", tt.v, tt.lo, tt.hi, tt.want, got)
		}
	}
	if got := clampF(1.5, 0, 1); got != 1 {
		t.Errorf("Expected clampF to cap at 1, got %v", got)
	}
	if got := clampF(-0.5, 0, 1); got != 0 {
		t.Errorf("Expected clampF to floor at 0, got %v", got)
	}
}

func TestRandDeterminism(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 5; i++ {
		if av, bv := a.NextU64(), b.NextU64(); av != bv {
			t.Fatalf("Expected identical streams from one seed, got %d vs %d at step %d", av, bv, i)
		}
	}
}

func TestRandZeroSeedNormalized(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 {
		t.Error("Expected a zero seed to still produce output")
	}
}

func TestRandBounds(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(6); v < 0 || v >= 6 {
			t.Fatalf("Expected Intn(6) in [0, 6), got %d", v)
		}
		if v := r.Range(3, 5); v < 3 || v > 5 {
			t.Fatalf("Expected Range(3, 5) inclusive, got %d", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Expected Float64 in [0, 1), got %v", v)
		}
		if v := r.RangeF(2, 4); v < 2 || v >= 4 {
			t.Fatalf("Expected RangeF(2, 4) in [2, 4), got %v", v)
		}
	}
	if got := r.Intn(0); got != 0 {
		t.Errorf("Expected Intn(0) to be 0, got %d", got)
	}
	if got := r.Range(5, 3); got != 5 {
		t.Errorf("Expected an inverted range to return its min, got %d", got)
	}
}

func TestRangeHitsBothEnds(t *testing.T) {
	r := NewRand(9)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[r.Range(20, 40)] = true
	}
	if !seen[20] || !seen[40] {
		t.Errorf("Expected both endpoints within 500 draws, got min=%v max=%v", seen[20], seen[40])
	}
}

func TestSplitmix64Spreads(t *testing.T) {
	if splitmix64(1) == splitmix64(2) {
		t.Error("Expected adjacent seeds to diverge")
	}
	if splitmix64(0) == 0 {
		t.Error("Expected a zero input to mix to a nonzero output")
	}
}
