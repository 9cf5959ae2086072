// Package entity builds fresh player, monster and item entities from the
// embedded templates.
package entity

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/dungeoncrawl/internal/ai"
	"github.com/samdwyer/dungeoncrawl/internal/consumable"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Factory turns template definitions into new entities. Every call returns
// a fresh instance with its own ID, Fighter and AI; nothing is shared
// between spawns.
type Factory struct {
	player   gamedata.ActorDef
	monsters *gamedata.Registry[gamedata.ActorDef]
	items    *gamedata.Registry[gamedata.ItemDef]
}

// NewFactory creates a factory from explicit template sets.
func NewFactory(player gamedata.ActorDef, monsters *gamedata.Registry[gamedata.ActorDef], items *gamedata.Registry[gamedata.ItemDef]) *Factory {
	return &Factory{player: player, monsters: monsters, items: items}
}

// LoadFactory creates a factory from the embedded actor and item data.
func LoadFactory() (*Factory, error) {
	actors, err := gamedata.LoadActors()
	if err != nil {
		return nil, fmt.Errorf("loading actors: %w", err)
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading monsters: %w", err)
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	return NewFactory(actors.Player, monsters, items), nil
}

// NewPlayer creates the player actor. It is not placed on any map.
func (f *Factory) NewPlayer() *world.Entity {
	p := newActor(&f.player)
	p.Inventory = world.NewInventory(p, f.player.Inventory)
	return p
}

// NewMonster creates a monster from def with a fresh hostile AI.
func (f *Factory) NewMonster(def *gamedata.ActorDef) *world.Entity {
	m := newActor(def)
	m.AI = ai.NewHostile()
	return m
}

// NewItem creates an item from def.
func (f *Factory) NewItem(def *gamedata.ItemDef) *world.Entity {
	e := world.NewEntity(def.Name, def.GlyphRune(), def.TCellColor())
	e.RenderOrder = world.RenderItem
	e.Consumable = newConsumable(def)
	return e
}

// SpawnMonster draws a weighted monster type and places a new instance at
// the given location.
func (f *Factory) SpawnMonster(rng *rand.Rand, m *world.GameMap, at geom.Coords) *world.Entity {
	def := f.monsters.SpawnRandom(rng)
	if def == nil {
		return nil
	}
	e := f.NewMonster(def)
	e.Place(at, m)
	return e
}

// SpawnItem draws a weighted item type and places a new instance at the
// given location.
func (f *Factory) SpawnItem(rng *rand.Rand, m *world.GameMap, at geom.Coords) *world.Entity {
	def := f.items.SpawnRandom(rng)
	if def == nil {
		return nil
	}
	e := f.NewItem(def)
	e.Place(at, m)
	return e
}

func newActor(def *gamedata.ActorDef) *world.Entity {
	e := world.NewEntity(def.Name, def.GlyphRune(), def.TCellColor())
	e.BlocksMovement = true
	e.RenderOrder = world.RenderActor
	e.Fighter = world.NewFighter(def.HP, def.Defense, def.Power)
	return e
}

func newConsumable(def *gamedata.ItemDef) world.Consumable {
	switch def.Kind {
	case gamedata.KindHealing:
		return consumable.Healing{Amount: def.Amount}
	case gamedata.KindLightning:
		return consumable.Lightning{Damage: def.Damage, Range: def.Range}
	case gamedata.KindConfusion:
		return consumable.Confusion{Turns: def.Turns}
	case gamedata.KindFireball:
		return consumable.Fireball{Damage: def.Damage, Radius: def.Radius}
	default:
		return nil
	}
}
