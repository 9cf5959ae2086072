package geom

import (
	"math"
	"testing"
)

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b     Coords
		expected int
	}{
		{At(0, 0), At(0, 0), 0},
		{At(0, 0), At(1, 1), 1},
		{At(5, 5), At(2, 7), 3},
		{At(-3, 4), At(3, -4), 8},
	}

	for _, tt := range tests {
		if got := tt.a.Chebyshev(tt.b); got != tt.expected {
			t.Errorf("%v.Chebyshev(%v) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
		if got := tt.b.Chebyshev(tt.a); got != tt.expected {
			t.Errorf("Chebyshev should be symmetric: %v.Chebyshev(%v) = %d", tt.b, tt.a, got)
		}
	}
}

func TestEuclidean(t *testing.T) {
	if got := At(0, 0).Euclidean(At(3, 4)); math.Abs(got-5) > 1e-9 {
		t.Errorf("Euclidean((0,0),(3,4)) = %f, want 5", got)
	}
}

func TestAddAndSub(t *testing.T) {
	c := At(5, 5).Add(1, -2)
	if c != At(6, 3) {
		t.Errorf("Add = %v, want (6,3)", c)
	}

	dx, dy := c.Sub(At(5, 5))
	if dx != 1 || dy != -2 {
		t.Errorf("Sub = (%d,%d), want (1,-2)", dx, dy)
	}
}

func TestDirectionsAreUnitSteps(t *testing.T) {
	seen := make(map[[2]int]bool)
	for _, d := range Directions {
		if At(0, 0).Chebyshev(At(d[0], d[1])) != 1 {
			t.Errorf("direction %v is not a unit step", d)
		}
		seen[d] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct directions, got %d", len(seen))
	}
}
