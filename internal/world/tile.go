// Package world provides the game map, its entities, field of view and
// dungeon generation.
package world

import "github.com/gdamore/tcell/v2"

// Graphic is how a single cell is drawn.
type Graphic struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

// Tile is a single map cell. Tiles are plain values: the grid stores copies
// of the kinds below, never references to them.
type Tile struct {
	Walkable    bool    // Can be walked over
	Transparent bool    // Does not block field of view
	Dark        Graphic // Drawn when explored but not in view
	Light       Graphic // Drawn when in view
}

var (
	floorTile = Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Glyph: ' ', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(50, 50, 150)},
		Light:       Graphic{Glyph: ' ', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(200, 180, 50)},
	}
	wallTile = Tile{
		Walkable:    false,
		Transparent: false,
		Dark:        Graphic{Glyph: ' ', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(0, 0, 100)},
		Light:       Graphic{Glyph: ' ', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(130, 110, 50)},
	}
	shroud = Graphic{Glyph: ' ', FG: tcell.NewRGBColor(255, 255, 255), BG: tcell.NewRGBColor(0, 0, 0)}
)

// Floor returns a walkable, transparent tile.
func Floor() Tile { return floorTile }

// Wall returns a solid, opaque tile.
func Wall() Tile { return wallTile }

// Shroud returns the graphic for cells that were never seen.
func Shroud() Graphic { return shroud }
