package ai

import (
	"github.com/samdwyer/dungeoncrawl/internal/action"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Confused makes an actor stumble in random directions for a number of
// turns, then hands control back to the strategy it replaced.
type Confused struct {
	Previous       world.AI
	TurnsRemaining int
}

// NewConfused wraps previous for the given number of turns.
func NewConfused(previous world.AI, turns int) *Confused {
	return &Confused{Previous: previous, TurnsRemaining: turns}
}

// Perform bumps in a random direction, or restores the previous strategy
// once the confusion wears off. Bumping into another actor attacks it.
func (c *Confused) Perform(s *world.State, self *world.Entity) error {
	if c.TurnsRemaining <= 0 {
		s.Log.Add(messages.Textf("The %s is no longer confused.", self.Name), messages.White)
		self.AI = c.Previous
		return nil
	}

	c.TurnsRemaining--
	d := geom.Directions[s.Rng.Intn(len(geom.Directions))]
	return action.Bump{Entity: self, DX: d[0], DY: d[1]}.Perform(s)
}
