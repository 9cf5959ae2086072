// Package consumable implements the effects of usable items.
package consumable

import (
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Targeted is implemented by consumables that act on a chosen cell rather
// than on the user.
type Targeted interface {
	NeedsTarget() bool
}

// NeedsTarget reports whether using item requires picking a target.
func NeedsTarget(item *world.Entity) bool {
	t, ok := item.Consumable.(Targeted)
	return ok && t.NeedsTarget()
}

// consume removes a spent item from whatever inventory holds it.
func consume(use world.ItemUse) {
	if inv, ok := use.Item.Parent().(*world.Inventory); ok {
		inv.Remove(use.Item)
	}
}
