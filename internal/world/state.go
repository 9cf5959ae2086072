package world

import (
	"math/rand"

	"github.com/samdwyer/dungeoncrawl/internal/messages"
)

// FOVRadius is how far the player can see.
const FOVRadius = 8

// State is the mutable world a single turn operates on. Actions, AI
// strategies and consumables all receive it.
type State struct {
	Map    *GameMap
	Player *Entity
	Log    *messages.Log
	Rng    *rand.Rand
}

// UpdateFOV recomputes the player's field of view.
func (s *State) UpdateFOV() {
	s.Map.UpdateFOV(s.Player.Location, FOVRadius)
}
