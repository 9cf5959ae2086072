package world

import "github.com/samdwyer/dungeoncrawl/internal/geom"

// ComputeFOV returns the cells visible from origin within radius using
// symmetric shadowcasting over a [x][y] transparency grid. The origin is
// always visible, opaque cells bounding the light are visible, and cells
// outside the grid are treated as opaque.
func ComputeFOV(transparent [][]bool, origin geom.Coords, radius int) [][]bool {
	width := len(transparent)
	height := 0
	if width > 0 {
		height = len(transparent[0])
	}
	visible := newGrid(width, height, false)

	sc := &shadowcaster{
		transparent: transparent,
		visible:     visible,
		origin:      origin,
		radius:      radius,
		width:       width,
		height:      height,
	}
	if !sc.inBounds(origin) {
		return visible
	}
	visible[origin.X][origin.Y] = true

	for _, q := range []quadrant{north, east, south, west} {
		sc.quadrant = q
		sc.scan(row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}})
	}
	return visible
}

type quadrant int

const (
	north quadrant = iota
	east
	south
	west
)

// transform maps a (depth, col) position in quadrant space to map coordinates.
func (q quadrant) transform(origin geom.Coords, depth, col int) geom.Coords {
	switch q {
	case north:
		return geom.At(origin.X+col, origin.Y-depth)
	case south:
		return geom.At(origin.X+col, origin.Y+depth)
	case east:
		return geom.At(origin.X+depth, origin.Y+col)
	default:
		return geom.At(origin.X-depth, origin.Y+col)
	}
}

// slope is the rational num/den; den is always positive.
type slope struct {
	num, den int
}

type row struct {
	depth      int
	start, end slope
}

// minCol is depth*start rounded with ties going up.
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol is depth*end rounded with ties going down.
func (r row) maxCol() int {
	return -floorDiv(-(2*r.depth*r.end.num - r.end.den), 2*r.end.den)
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// isSymmetric reports whether col lies within the row's slopes, so that the
// cell can see the origin as well as being seen from it.
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

type shadowcaster struct {
	transparent   [][]bool
	visible       [][]bool
	origin        geom.Coords
	radius        int
	width, height int
	quadrant      quadrant
}

func (sc *shadowcaster) inBounds(c geom.Coords) bool {
	return c.X >= 0 && c.X < sc.width && c.Y >= 0 && c.Y < sc.height
}

func (sc *shadowcaster) isWall(c geom.Coords) bool {
	return !sc.inBounds(c) || !sc.transparent[c.X][c.Y]
}

func (sc *shadowcaster) reveal(c geom.Coords, depth, col int) {
	if !sc.inBounds(c) || depth*depth+col*col > sc.radius*sc.radius {
		return
	}
	sc.visible[c.X][c.Y] = true
}

func (sc *shadowcaster) scan(r row) {
	if r.depth > sc.radius {
		return
	}

	hasPrev, prevWall := false, false
	lo, hi := r.minCol(), r.maxCol()
	for col := lo; col <= hi; col++ {
		c := sc.quadrant.transform(sc.origin, r.depth, col)
		wall := sc.isWall(c)

		if wall || r.isSymmetric(col) {
			sc.reveal(c, r.depth, col)
		}
		if hasPrev && prevWall && !wall {
			r.start = tileSlope(r.depth, col)
		}
		if hasPrev && !prevWall && wall {
			next := r.next()
			next.end = tileSlope(r.depth, col)
			sc.scan(next)
		}
		hasPrev, prevWall = true, wall
	}
	if hasPrev && !prevWall {
		sc.scan(r.next())
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
