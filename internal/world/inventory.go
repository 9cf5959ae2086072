package world

import (
	"errors"
	"slices"
)

var (
	// ErrInventoryFull is returned when adding to an inventory at capacity.
	ErrInventoryFull = errors.New("inventory full")
	// ErrNotCarried is returned when dropping an item the inventory does not hold.
	ErrNotCarried = errors.New("item not in inventory")
	// ErrOwnerNotOnMap is returned when dropping while the owner is off-map.
	ErrOwnerNotOnMap = errors.New("inventory owner is not on a map")
)

// Inventory is a bounded, ordered list of items carried by an actor.
type Inventory struct {
	Capacity int
	items    []*Entity
	owner    *Entity
}

// NewInventory creates an empty inventory owned by owner.
func NewInventory(owner *Entity, capacity int) *Inventory {
	return &Inventory{
		Capacity: capacity,
		items:    make([]*Entity, 0, capacity),
		owner:    owner,
	}
}

// Items returns the carried items in pickup order.
func (inv *Inventory) Items() []*Entity { return inv.items }

// Len returns the number of carried items.
func (inv *Inventory) Len() int { return len(inv.items) }

// IsFull reports whether another item would exceed capacity.
func (inv *Inventory) IsFull() bool { return len(inv.items) >= inv.Capacity }

// Has reports whether item is carried.
func (inv *Inventory) Has(item *Entity) bool {
	return item.parent == inv
}

// Add moves item into the inventory from whatever container held it.
func (inv *Inventory) Add(item *Entity) error {
	if inv.IsFull() {
		return ErrInventoryFull
	}
	item.detach()
	inv.items = append(inv.items, item)
	item.parent = inv
	return nil
}

// Remove takes item out of the inventory without placing it anywhere.
func (inv *Inventory) Remove(item *Entity) bool {
	if !inv.Has(item) {
		return false
	}
	item.detach()
	return true
}

// Drop moves item from the inventory onto the owner's map at the owner's location.
func (inv *Inventory) Drop(item *Entity) error {
	if !inv.Has(item) {
		return ErrNotCarried
	}
	m := inv.owner.Map()
	if m == nil {
		return ErrOwnerNotOnMap
	}
	item.Place(inv.owner.Location, m)
	return nil
}

func (inv *Inventory) remove(e *Entity) {
	if i := slices.Index(inv.items, e); i >= 0 {
		inv.items = slices.Delete(inv.items, i, i+1)
	}
}
