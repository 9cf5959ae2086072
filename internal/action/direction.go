package action

import (
	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Movement steps Entity by (DX, DY).
type Movement struct {
	Entity *world.Entity
	DX, DY int
}

// Perform fails if the destination is off the map, not walkable, or
// occupied by a blocking entity.
func (a Movement) Perform(s *world.State) error {
	dest := a.Entity.Location.Add(a.DX, a.DY)
	if !s.Map.InBounds(dest) {
		return Impossiblef("That way is blocked.")
	}
	if !s.Map.IsWalkable(dest) {
		return Impossiblef("That way is blocked.")
	}
	if s.Map.BlockingEntityAt(dest) != nil {
		return Impossiblef("That way is blocked.")
	}

	a.Entity.Move(a.DX, a.DY)
	return nil
}

// Melee attacks the actor at Entity's location offset by (DX, DY).
type Melee struct {
	Entity *world.Entity
	DX, DY int
}

// Perform deals power minus defense damage, if positive, and logs the exchange.
func (a Melee) Perform(s *world.State) error {
	target := s.Map.ActorAt(a.Entity.Location.Add(a.DX, a.DY))
	if target == nil {
		return Impossiblef("Nothing to attack.")
	}

	result := combat.ResolveMelee(a.Entity, target)

	color := messages.EnemyAttack
	if a.Entity == s.Player {
		color = messages.PlayerAttack
	}
	s.Log.Add(result.Message, color)

	if result.Damage > 0 {
		combat.Damage(s, target, result.Damage)
	}
	return nil
}

// Bump attacks a blocking actor in the given direction, or moves there if
// there is none.
type Bump struct {
	Entity *world.Entity
	DX, DY int
}

// Perform delegates to Melee or Movement.
func (a Bump) Perform(s *world.State) error {
	if target := s.Map.ActorAt(a.Destination()); target != nil && target.BlocksMovement {
		return Melee{Entity: a.Entity, DX: a.DX, DY: a.DY}.Perform(s)
	}
	return Movement{Entity: a.Entity, DX: a.DX, DY: a.DY}.Perform(s)
}

// Destination returns the cell the bump is aimed at.
func (a Bump) Destination() geom.Coords {
	return a.Entity.Location.Add(a.DX, a.DY)
}

// Wait does nothing and always succeeds.
type Wait struct {
	Entity *world.Entity
}

// Perform is a no-op.
func (Wait) Perform(*world.State) error {
	return nil
}
