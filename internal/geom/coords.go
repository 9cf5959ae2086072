// Package geom provides integer grid coordinates and distance metrics.
package geom

import "math"

// Coords is a position on the map grid.
type Coords struct {
	X, Y int
}

// At is shorthand for Coords{X: x, Y: y}.
func At(x, y int) Coords {
	return Coords{X: x, Y: y}
}

// Add returns c offset by (dx, dy).
func (c Coords) Add(dx, dy int) Coords {
	return Coords{X: c.X + dx, Y: c.Y + dy}
}

// Sub returns the delta that moves o onto c.
func (c Coords) Sub(o Coords) (dx, dy int) {
	return c.X - o.X, c.Y - o.Y
}

// Chebyshev returns max(|dx|, |dy|), the number of king moves between c and o.
func (c Coords) Chebyshev(o Coords) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y))
}

// Euclidean returns the straight-line distance between c and o.
func (c Coords) Euclidean(o Coords) float64 {
	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// Directions lists the eight compass deltas, clockwise from north.
var Directions = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
