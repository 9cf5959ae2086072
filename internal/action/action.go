// Package action implements the commands that make up a game turn. Each
// action carries a decision already made by the player or an AI and
// applies it to the world when performed.
package action

import (
	"errors"

	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Action is one discrete step of a turn.
type Action interface {
	Perform(s *world.State) error
}

// Impossible is returned when an action's preconditions do not hold. It is
// recoverable: the player's turn is not spent and AI turns carry on.
type Impossible struct {
	Reason string
}

func (e *Impossible) Error() string {
	return e.Reason
}

// Impossiblef builds an Impossible error from a message template.
func Impossiblef(format string, args ...any) error {
	return &Impossible{Reason: messages.Textf(format, args...)}
}

// IsImpossible reports whether err is, or wraps, an Impossible.
func IsImpossible(err error) bool {
	var imp *Impossible
	return errors.As(err, &imp)
}

// Name returns a short identifier for the kind of action.
func Name(a Action) string {
	switch a.(type) {
	case Movement, *Movement:
		return "movement"
	case Melee, *Melee:
		return "melee"
	case Bump, *Bump:
		return "bump"
	case Item, *Item:
		return "item"
	case Pickup, *Pickup:
		return "pickup"
	case Drop, *Drop:
		return "drop"
	case Wait, *Wait:
		return "wait"
	default:
		return "unknown"
	}
}
