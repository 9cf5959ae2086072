package ai

import (
	"github.com/samdwyer/dungeoncrawl/internal/action"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Hostile chases the player while it can see them and attacks when
// adjacent. Once the player is out of sight it keeps following its last
// known route until the route runs out.
type Hostile struct {
	path []geom.Coords
}

// NewHostile returns a hostile strategy with no remembered route.
func NewHostile() *Hostile {
	return &Hostile{}
}

// Path returns the remaining cached route.
func (h *Hostile) Path() []geom.Coords {
	return h.path
}

// Perform takes one turn for self.
func (h *Hostile) Perform(s *world.State, self *world.Entity) error {
	target := s.Player
	dx, dy := target.Location.Sub(self.Location)

	// Visibility is symmetric, so a monster standing in the player's field
	// of view can see the player.
	if s.Map.IsVisible(self.Location) {
		if self.Location.Chebyshev(target.Location) <= 1 {
			return action.Melee{Entity: self, DX: dx, DY: dy}.Perform(s)
		}
		h.path = PathTo(s.Map, self, target.Location)
	}

	if len(h.path) > 0 {
		next := h.path[0]
		h.path = h.path[1:]
		mx, my := next.Sub(self.Location)
		return action.Movement{Entity: self, DX: mx, DY: my}.Perform(s)
	}

	return action.Wait{Entity: self}.Perform(s)
}
