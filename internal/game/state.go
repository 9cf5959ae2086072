// Package game provides the turn engine, the main input loop and their
// configuration.
package game

// State is the input mode of the game.
type State int

const (
	// StatePlaying is the default mode: keys move, wait and pick up.
	StatePlaying State = iota
	// StateUseMenu shows the inventory; a letter uses that item.
	StateUseMenu
	// StateDropMenu shows the inventory; a letter drops that item.
	StateDropMenu
	// StateDead ignores everything but quit.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateUseMenu:
		return "use_menu"
	case StateDropMenu:
		return "drop_menu"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
