package world

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/dungeoncrawl/internal/geom"
)

// RenderOrder decides which entity is drawn on top when several share a cell.
type RenderOrder int

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

// Lifecycle is the life state of an actor.
type Lifecycle int

const (
	Alive Lifecycle = iota
	Dead
)

// String returns a human-readable lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// AI decides and performs the turn of a non-player actor.
type AI interface {
	Perform(s *State, self *Entity) error
}

// ItemUse is the context handed to a consumable when it is activated.
type ItemUse struct {
	Consumer *Entity
	Item     *Entity
	Target   geom.Coords
}

// Consumable is the behaviour invoked when an item is used.
type Consumable interface {
	Activate(s *State, use ItemUse) error
}

// Container is anything that owns entities: a GameMap or an Inventory.
// An entity belongs to at most one container at a time.
type Container interface {
	remove(e *Entity)
}

// Entity is any object that lives on the map: the player, monsters, items
// and corpses. Capabilities are optional fields: actors have a Fighter,
// monsters additionally an AI, items a Consumable.
type Entity struct {
	ID             uuid.UUID
	Location       geom.Coords
	Glyph          rune
	Color          tcell.Color
	Name           string
	BlocksMovement bool
	RenderOrder    RenderOrder
	Lifecycle      Lifecycle

	Fighter    *Fighter
	AI         AI
	Inventory  *Inventory
	Consumable Consumable

	parent   Container
	placedAt uint64 // set by GameMap on placement
}

// NewEntity creates an entity with a fresh ID that is not yet on any map.
func NewEntity(name string, glyph rune, color tcell.Color) *Entity {
	return &Entity{
		ID:    uuid.New(),
		Name:  name,
		Glyph: glyph,
		Color: color,
	}
}

// IsItem reports whether the entity can be used from an inventory.
func (e *Entity) IsItem() bool { return e.Consumable != nil }

// IsAlive reports whether the entity is a living actor.
func (e *Entity) IsAlive() bool { return e.Fighter != nil && e.Lifecycle == Alive }

// Parent returns the container currently holding the entity, or nil.
func (e *Entity) Parent() Container { return e.parent }

// Map returns the map the entity is resident on, or nil if it is carried.
func (e *Entity) Map() *GameMap {
	m, _ := e.parent.(*GameMap)
	return m
}

// Move shifts the entity's location by (dx, dy).
func (e *Entity) Move(dx, dy int) {
	e.Location = e.Location.Add(dx, dy)
}

// Place puts the entity at loc on m, taking it out of whatever container
// held it before.
func (e *Entity) Place(loc geom.Coords, m *GameMap) {
	e.detach()
	e.Location = loc
	m.add(e)
}

func (e *Entity) detach() {
	if e.parent != nil {
		e.parent.remove(e)
		e.parent = nil
	}
}
