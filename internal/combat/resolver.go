// Package combat resolves melee damage and actor death.
package combat

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// CorpseGlyph and CorpseColor are how dead actors are drawn.
const CorpseGlyph = '%'

var CorpseColor = tcell.NewRGBColor(191, 0, 0)

// Result describes a melee exchange before it is applied.
type Result struct {
	Damage  int    // Power minus defense; zero or less means no damage
	Message string // Human-readable description
}

// CalculateDamage returns attacker power minus defender defense. The result
// may be zero or negative.
func CalculateDamage(attacker, defender *world.Entity) int {
	return attacker.Fighter.Power - defender.Fighter.Defense
}

// ResolveMelee computes the outcome of attacker hitting defender without
// applying it.
func ResolveMelee(attacker, defender *world.Entity) Result {
	damage := CalculateDamage(attacker, defender)
	desc := messages.Textf("%s attacks %s", capitalize(attacker.Name), defender.Name)
	if damage > 0 {
		return Result{
			Damage:  damage,
			Message: messages.Textf("%s for %d hit points.", desc, damage),
		}
	}
	return Result{
		Damage:  damage,
		Message: messages.Textf("%s but does no damage.", desc),
	}
}

// Damage subtracts amount from target's HP and kills it when HP reaches
// zero. It reports whether the target died.
func Damage(s *world.State, target *world.Entity, amount int) bool {
	if target.Fighter == nil || !target.IsAlive() {
		return false
	}
	target.Fighter.TakeDamage(amount)
	if target.Fighter.HP() == 0 {
		Kill(s, target)
		return true
	}
	return false
}

// Kill turns target into a corpse: it stops blocking, loses its AI and is
// marked dead.
func Kill(s *world.State, target *world.Entity) {
	if target == s.Player {
		s.Log.Add(messages.Textf("You died!"), messages.PlayerDie)
	} else {
		s.Log.Add(messages.Textf("%s is dead!", capitalize(target.Name)), messages.EnemyDie)
	}

	target.Glyph = CorpseGlyph
	target.Color = CorpseColor
	target.BlocksMovement = false
	target.AI = nil
	target.Lifecycle = world.Dead
	target.Name = "remains of " + target.Name
	target.RenderOrder = world.RenderCorpse
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
