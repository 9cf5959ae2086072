package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ActorDef defines the player or a monster type loaded from JSON.
type ActorDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name, lower case (e.g., "orc")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "o")
	Color       string `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	HP          int    `json:"hp"`          // Maximum hit points
	Defense     int    `json:"defense"`     // Subtracted from incoming melee damage
	Power       int    `json:"power"`       // Melee attack strength
	Inventory   int    `json:"inventory"`   // Carrying capacity; zero means none
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	return glyphRune(a.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (a *ActorDef) TCellColor() tcell.Color {
	return colorOrWhite(a.Color)
}

func (a ActorDef) Weight() int { return a.SpawnWeight }

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Player   ActorDef   `json:"player"`
	Monsters []ActorDef `json:"monsters"`
}

// LoadActors loads the player and monster definitions from the embedded actors.json file.
func LoadActors() (ActorsFile, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return file, err
	}
	if file.Player.HP <= 0 {
		return file, errors.New("actors.json: player must have positive hp")
	}
	return file, nil
}

// LoadMonsterRegistry loads and creates a registry from the monsters in actors.json.
func LoadMonsterRegistry() (*Registry[ActorDef], error) {
	file, err := LoadActors()
	if err != nil {
		return nil, err
	}
	if len(file.Monsters) == 0 {
		return nil, errors.New("no monsters loaded from actors.json")
	}
	return NewRegistry(file.Monsters), nil
}

func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
