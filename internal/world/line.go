package world

import "github.com/samdwyer/dungeoncrawl/internal/geom"

// Line returns the Bresenham rasterization from a to b, both endpoints included.
func Line(a, b geom.Coords) []geom.Coords {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy

	points := make([]geom.Coords, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	for {
		points = append(points, geom.At(x, y))
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
