package random

import (
	"math"
	"testing"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestIntRange(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("value %d outside [5, 10)", v)
		}
	}

	if v := r.IntRange(3, 3); v != 3 {
		t.Errorf("empty range should return lo, got %d", v)
	}
}

func TestTriangularBounds(t *testing.T) {
	r := New(7)
	tests := []struct {
		name           string
		lo, mode, hi   float64
		wantLo, wantHi float64
	}{
		{"regular", 1, 2, 4, 1, 4},
		{"reversed", 4, 2, 1, 1, 4},
		{"degenerate", 2, 2, 2, 2, 2},
		{"mode outside", 0, 10, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				v := r.Triangular(tt.lo, tt.mode, tt.hi)
				if v < tt.wantLo || v > tt.wantHi {
					t.Fatalf("value %f outside [%f, %f]", v, tt.wantLo, tt.wantHi)
				}
			}
		})
	}
}

func TestExponentialMean(t *testing.T) {
	r := New(3)
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += r.Exponential(2.0)
	}
	if mean := sum / float64(n); math.Abs(mean-2.0) > 0.1 {
		t.Errorf("expected mean ~2.0, got %f", mean)
	}
}

func TestSampleDistinct(t *testing.T) {
	r := New(9)
	idx := r.Sample(10, 5)
	if len(idx) != 5 {
		t.Fatalf("expected 5 indices, got %d", len(idx))
	}
	seen := map[int]bool{}
	for _, i := range idx {
		if seen[i] {
			t.Errorf("index %d drawn twice", i)
		}
		seen[i] = true
	}

	if got := len(r.Sample(3, 10)); got != 3 {
		t.Errorf("expected sample capped at 3, got %d", got)
	}
}

func TestSampleEmpty(t *testing.T) {
	r := New(10)
	for _, tc := range [][2]int{{5, 0}, {5, -1}, {0, 3}, {-2, 1}} {
		if got := r.Sample(tc[0], tc[1]); len(got) != 0 {
			t.Errorf("Sample(%d, %d): expected no indices, got %v", tc[0], tc[1], got)
		}
	}
}

func TestPickEmpty(t *testing.T) {
	r := New(11)
	if got := Pick(r, []string(nil)); got != "" {
		t.Errorf("expected zero value, got %q", got)
	}
	if got := Pick(r, []int{7}); got != 7 {
		t.Errorf("expected the only item, got %d", got)
	}
}
