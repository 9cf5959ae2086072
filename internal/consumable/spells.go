package consumable

import (
	"github.com/samdwyer/dungeoncrawl/internal/action"
	"github.com/samdwyer/dungeoncrawl/internal/ai"
	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Lightning strikes the closest visible enemy within Range.
type Lightning struct {
	Damage int
	Range  int
}

// Activate picks its own target; the supplied one is ignored.
func (l Lightning) Activate(s *world.State, use world.ItemUse) error {
	var target *world.Entity
	closest := float64(l.Range) + 1

	for _, actor := range s.Map.Actors() {
		if actor == use.Consumer || !s.Map.IsVisible(actor.Location) {
			continue
		}
		d := use.Consumer.Location.Euclidean(actor.Location)
		// Ties go to the first actor in row-major order.
		if d < closest {
			target, closest = actor, d
		}
	}

	if target == nil {
		return action.Impossiblef("No enemy is close enough to strike.")
	}

	s.Log.Add(messages.Textf("A lightning bolt strikes the %s with a loud thunder, for %d damage!",
		target.Name, l.Damage), messages.White)
	combat.Damage(s, target, l.Damage)
	consume(use)
	return nil
}

// Confusion replaces the target's AI with a confused one for Turns turns.
type Confusion struct {
	Turns int
}

func (Confusion) NeedsTarget() bool { return true }

func (c Confusion) Activate(s *world.State, use world.ItemUse) error {
	if !s.Map.IsVisible(use.Target) {
		return action.Impossiblef("You cannot target an area that you cannot see.")
	}
	target := s.Map.ActorAt(use.Target)
	if target == nil {
		return action.Impossiblef("You must select an enemy to target.")
	}
	if target == use.Consumer {
		return action.Impossiblef("You cannot confuse yourself!")
	}

	s.Log.Add(messages.Textf("The eyes of the %s look vacant, as it starts to stumble around!",
		target.Name), messages.StatusEffect)
	target.AI = ai.NewConfused(target.AI, c.Turns)
	consume(use)
	return nil
}

// Fireball damages every actor within Radius of the target, the user included.
type Fireball struct {
	Damage int
	Radius int
}

func (Fireball) NeedsTarget() bool { return true }

func (f Fireball) Activate(s *world.State, use world.ItemUse) error {
	if !s.Map.IsVisible(use.Target) {
		return action.Impossiblef("You cannot target an area that you cannot see.")
	}

	var hit []*world.Entity
	for _, actor := range s.Map.Actors() {
		if actor.Location.Euclidean(use.Target) <= float64(f.Radius) {
			hit = append(hit, actor)
		}
	}
	if len(hit) == 0 {
		return action.Impossiblef("There are no targets in the radius.")
	}

	for _, actor := range hit {
		s.Log.Add(messages.Textf("The %s is engulfed in a fiery explosion, taking %d damage!",
			actor.Name, f.Damage), messages.White)
		combat.Damage(s, actor, f.Damage)
	}
	consume(use)
	return nil
}
