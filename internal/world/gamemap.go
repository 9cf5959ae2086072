package world

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeoncrawl/internal/geom"
)

// GameMap is a dungeon level: a tile grid indexed [x][y], the player's
// visibility state and the set of entities resident on it.
type GameMap struct {
	Width  int
	Height int

	tiles    [][]Tile
	visible  [][]bool // recomputed every turn
	explored [][]bool // only ever grows
	entities mapset.Set[*Entity]
	placed   uint64 // placement counter, orders entities sharing a cell
}

// NewGameMap creates a map of the given size filled with walls.
func NewGameMap(width, height int) *GameMap {
	return &GameMap{
		Width:    width,
		Height:   height,
		tiles:    newGrid(width, height, Wall()),
		visible:  newGrid(width, height, false),
		explored: newGrid(width, height, false),
		entities: mapset.New[*Entity](),
	}
}

func newGrid[T any](width, height int, fill T) [][]T {
	grid := make([][]T, width)
	for x := range grid {
		grid[x] = make([]T, height)
		for y := range grid[x] {
			grid[x][y] = fill
		}
	}
	return grid
}

// InBounds reports whether c lies inside the map.
func (m *GameMap) InBounds(c geom.Coords) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// Tile returns the tile at c. Out-of-bounds cells read as wall.
func (m *GameMap) Tile(c geom.Coords) Tile {
	if !m.InBounds(c) {
		return Wall()
	}
	return m.tiles[c.X][c.Y]
}

// SetTile stores a copy of t at c. Out-of-bounds writes are ignored.
func (m *GameMap) SetTile(c geom.Coords, t Tile) {
	if m.InBounds(c) {
		m.tiles[c.X][c.Y] = t
	}
}

// IsWalkable reports whether c is in bounds and its tile can be walked on.
func (m *GameMap) IsWalkable(c geom.Coords) bool {
	return m.InBounds(c) && m.tiles[c.X][c.Y].Walkable
}

// IsVisible reports whether c is in the player's current field of view.
func (m *GameMap) IsVisible(c geom.Coords) bool {
	return m.InBounds(c) && m.visible[c.X][c.Y]
}

// IsExplored reports whether c has ever been in the player's field of view.
func (m *GameMap) IsExplored(c geom.Coords) bool {
	return m.InBounds(c) && m.explored[c.X][c.Y]
}

// Transparency returns a fresh [x][y] grid of tile transparency.
func (m *GameMap) Transparency() [][]bool {
	grid := make([][]bool, m.Width)
	for x := range grid {
		grid[x] = make([]bool, m.Height)
		for y := range grid[x] {
			grid[x][y] = m.tiles[x][y].Transparent
		}
	}
	return grid
}

// Walkability returns a fresh [x][y] grid of tile walkability.
func (m *GameMap) Walkability() [][]bool {
	grid := make([][]bool, m.Width)
	for x := range grid {
		grid[x] = make([]bool, m.Height)
		for y := range grid[x] {
			grid[x][y] = m.tiles[x][y].Walkable
		}
	}
	return grid
}

// UpdateFOV recomputes the visible set from origin and folds it into the
// explored set.
func (m *GameMap) UpdateFOV(origin geom.Coords, radius int) {
	m.visible = ComputeFOV(m.Transparency(), origin, radius)
	for x := range m.visible {
		for y, seen := range m.visible[x] {
			if seen {
				m.explored[x][y] = true
			}
		}
	}
}

// Graphic returns how the cell at c should be drawn: lit if visible, dark
// if explored, shroud otherwise.
func (m *GameMap) Graphic(c geom.Coords) Graphic {
	switch {
	case m.IsVisible(c):
		return m.tiles[c.X][c.Y].Light
	case m.IsExplored(c):
		return m.tiles[c.X][c.Y].Dark
	default:
		return Shroud()
	}
}

// add registers e as resident. Callers go through Entity.Place.
func (m *GameMap) add(e *Entity) {
	m.placed++
	e.placedAt = m.placed
	m.entities.Put(e)
	e.parent = m
}

func (m *GameMap) remove(e *Entity) {
	m.entities.Remove(e)
}

// Has reports whether e is resident on the map.
func (m *GameMap) Has(e *Entity) bool {
	return m.entities.Has(e)
}

// Remove takes e off the map without placing it anywhere else.
func (m *GameMap) Remove(e *Entity) bool {
	if !m.Has(e) {
		return false
	}
	e.detach()
	return true
}

// Entities returns a snapshot of all resident entities in row-major order
// of location; entities sharing a cell come in the order they were placed.
func (m *GameMap) Entities() []*Entity {
	return m.collect(func(*Entity) bool { return true })
}

// Actors returns the living actors on the map, ordered as Entities.
// Turn order follows this ordering.
func (m *GameMap) Actors() []*Entity {
	return m.collect((*Entity).IsAlive)
}

// Items returns the items lying on the map, ordered as Entities.
func (m *GameMap) Items() []*Entity {
	return m.collect((*Entity).IsItem)
}

// EntitiesAt returns every entity at c, oldest placement first.
func (m *GameMap) EntitiesAt(c geom.Coords) []*Entity {
	return m.collect(func(e *Entity) bool { return e.Location == c })
}

// ItemsAt returns the items at c, oldest placement first. The last one is
// the top of the pile.
func (m *GameMap) ItemsAt(c geom.Coords) []*Entity {
	return m.collect(func(e *Entity) bool { return e.Location == c && e.IsItem() })
}

func (m *GameMap) collect(keep func(*Entity) bool) []*Entity {
	var out []*Entity
	m.entities.Each(func(e *Entity) {
		if keep(e) {
			out = append(out, e)
		}
	})
	slices.SortFunc(out, func(a, b *Entity) int {
		if c := cmp.Compare(a.Location.Y, b.Location.Y); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Location.X, b.Location.X); c != 0 {
			return c
		}
		return cmp.Compare(a.placedAt, b.placedAt)
	})
	return out
}

// BlockingEntityAt returns an entity at c that blocks movement, or nil.
func (m *GameMap) BlockingEntityAt(c geom.Coords) *Entity {
	var found *Entity
	m.entities.Each(func(e *Entity) {
		if found == nil && e.BlocksMovement && e.Location == c {
			found = e
		}
	})
	return found
}

// ActorAt returns the living actor at c, or nil.
func (m *GameMap) ActorAt(c geom.Coords) *Entity {
	var found *Entity
	m.entities.Each(func(e *Entity) {
		if found == nil && e.IsAlive() && e.Location == c {
			found = e
		}
	})
	return found
}
