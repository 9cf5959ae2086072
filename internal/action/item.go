package action

import (
	"errors"

	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Item uses Item from Entity's inventory. Target defaults to the user's
// own location when nil.
type Item struct {
	Entity *world.Entity
	Item   *world.Entity
	Target *geom.Coords
}

// TargetCoords returns the effective target location.
func (a Item) TargetCoords() geom.Coords {
	if a.Target != nil {
		return *a.Target
	}
	return a.Entity.Location
}

// Perform activates the item's consumable behaviour.
func (a Item) Perform(s *world.State) error {
	if a.Item.Consumable == nil {
		return Impossiblef("You cannot use the %s.", a.Item.Name)
	}
	return a.Item.Consumable.Activate(s, world.ItemUse{
		Consumer: a.Entity,
		Item:     a.Item,
		Target:   a.TargetCoords(),
	})
}

// Pickup moves the topmost item lying under Entity into its inventory.
type Pickup struct {
	Entity *world.Entity
}

// Perform fails if there is nothing to pick up or the inventory is full.
func (a Pickup) Perform(s *world.State) error {
	inv := a.Entity.Inventory
	if inv == nil {
		return Impossiblef("You cannot carry anything.")
	}

	pile := s.Map.ItemsAt(a.Entity.Location)
	if len(pile) > 0 {
		item := pile[len(pile)-1]
		if err := inv.Add(item); err != nil {
			if errors.Is(err, world.ErrInventoryFull) {
				return Impossiblef("Your inventory is full.")
			}
			return err
		}
		s.Log.Add(messages.Textf("You picked up the %s!", item.Name), messages.Pickup)
		return nil
	}

	return Impossiblef("There is nothing here to pick up.")
}

// Drop puts Item from Entity's inventory on the map at Entity's location.
type Drop struct {
	Entity *world.Entity
	Item   *world.Entity
}

// Perform fails if the item is not carried.
func (a Drop) Perform(s *world.State) error {
	inv := a.Entity.Inventory
	if inv == nil || !inv.Has(a.Item) {
		return Impossiblef("You are not carrying that.")
	}
	if err := inv.Drop(a.Item); err != nil {
		return err
	}
	s.Log.Add(messages.Textf("You dropped the %s.", a.Item.Name), messages.White)
	return nil
}
