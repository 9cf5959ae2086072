package world

import "github.com/samdwyer/dungeoncrawl/internal/geom"

// Room is a rectangular room. (X, Y) is the top-left wall corner and
// (X2, Y2) the bottom-right one; only the interior is carved to floor.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// NewRoom creates a room with top-left corner at c.
func NewRoom(c geom.Coords, width, height int) Room {
	return Room{X: c.X, Y: c.Y, Width: width, Height: height}
}

// X2 returns the right edge.
func (r Room) X2() int { return r.X + r.Width }

// Y2 returns the bottom edge.
func (r Room) Y2() int { return r.Y + r.Height }

// Center returns the center coordinates of the room.
func (r Room) Center() geom.Coords {
	return geom.At((r.X+r.X2())/2, (r.Y+r.Y2())/2)
}

// Inner returns the carved interior as inclusive bounds.
func (r Room) Inner() (minX, minY, maxX, maxY int) {
	return r.X + 1, r.Y + 1, r.X2() - 1, r.Y2() - 1
}

// InInterior reports whether c lies inside the carved interior.
func (r Room) InInterior(c geom.Coords) bool {
	minX, minY, maxX, maxY := r.Inner()
	return c.X >= minX && c.X <= maxX && c.Y >= minY && c.Y <= maxY
}

// Intersects returns true if this room overlaps or touches another room.
// Bounds are inclusive, so rooms sharing a wall also intersect.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X2() &&
		r.X2() >= other.X &&
		r.Y <= other.Y2() &&
		r.Y2() >= other.Y
}
