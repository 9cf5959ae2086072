package consumable

import (
	"github.com/samdwyer/dungeoncrawl/internal/action"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Healing restores up to Amount HP to the user.
type Healing struct {
	Amount int
}

// Activate fails without spending the item if the user is already at full health.
func (h Healing) Activate(s *world.State, use world.ItemUse) error {
	recovered := use.Consumer.Fighter.Heal(h.Amount)
	if recovered <= 0 {
		return action.Impossiblef("Your health is already full.")
	}

	s.Log.Add(messages.Textf("You consume the %s, and recover %d HP!", use.Item.Name, recovered),
		messages.HealthRecovered)
	consume(use)
	return nil
}
