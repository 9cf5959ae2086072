package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ItemKind selects the consumable behaviour of an item.
type ItemKind string

const (
	KindHealing   ItemKind = "healing"
	KindLightning ItemKind = "lightning"
	KindConfusion ItemKind = "confusion"
	KindFireball  ItemKind = "fireball"
)

// ItemDef defines a usable item type loaded from JSON. Which of the
// numeric fields apply depends on Kind.
type ItemDef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Glyph       string   `json:"glyph"`
	Color       string   `json:"color"`
	Kind        ItemKind `json:"kind"`
	Amount      int      `json:"amount,omitempty"` // healing
	Damage      int      `json:"damage,omitempty"` // lightning, fireball
	Range       int      `json:"range,omitempty"`  // lightning
	Radius      int      `json:"radius,omitempty"` // fireball
	Turns       int      `json:"turns,omitempty"`  // confusion
	SpawnWeight int      `json:"spawnWeight"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ItemDef) GlyphRune() rune {
	return glyphRune(d.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (d *ItemDef) TCellColor() tcell.Color {
	return colorOrWhite(d.Color)
}

func (d ItemDef) Weight() int { return d.SpawnWeight }

// Validate checks that Kind is known.
func (d *ItemDef) Validate() error {
	switch d.Kind {
	case KindHealing, KindLightning, KindConfusion, KindFireball:
		return nil
	default:
		return fmt.Errorf("item %s: unknown kind %q", d.ID, d.Kind)
	}
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Items {
		if err := file.Items[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Items, nil
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*Registry[ItemDef], error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewRegistry(items), nil
}
