package game

import "github.com/gdamore/tcell/v2"

// CommandKind is what a key press asks for, before it becomes an action.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdMove
	CmdWait
	CmdPickup
	CmdOpenUse
	CmdOpenDrop
	CmdSelect
	CmdCancel
)

// Command is a translated key press.
type Command struct {
	Kind   CommandKind
	DX, DY int // CmdMove
	Index  int // CmdSelect: inventory slot
}

var arrowKeys = map[tcell.Key][2]int{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	tcell.KeyHome:  {-1, -1},
	tcell.KeyEnd:   {-1, 1},
	tcell.KeyPgUp:  {1, -1},
	tcell.KeyPgDn:  {1, 1},
}

var moveRunes = map[rune][2]int{
	'k': {0, -1}, 'j': {0, 1}, 'h': {-1, 0}, 'l': {1, 0},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
	'8': {0, -1}, '2': {0, 1}, '4': {-1, 0}, '6': {1, 0},
	'7': {-1, -1}, '9': {1, -1}, '1': {-1, 1}, '3': {1, 1},
}

// Translate maps a key press to a command for the given input mode.
func Translate(st State, key tcell.Key, r rune) Command {
	if key == tcell.KeyCtrlC {
		return Command{Kind: CmdQuit}
	}

	switch st {
	case StateDead:
		if key == tcell.KeyEscape {
			return Command{Kind: CmdQuit}
		}
		return Command{}

	case StateUseMenu, StateDropMenu:
		if key == tcell.KeyEscape {
			return Command{Kind: CmdCancel}
		}
		if key == tcell.KeyRune && r >= 'a' && r <= 'z' {
			return Command{Kind: CmdSelect, Index: int(r - 'a')}
		}
		return Command{}
	}

	if key == tcell.KeyEscape {
		return Command{Kind: CmdQuit}
	}
	if d, ok := arrowKeys[key]; ok {
		return Command{Kind: CmdMove, DX: d[0], DY: d[1]}
	}
	if key != tcell.KeyRune {
		return Command{}
	}
	if d, ok := moveRunes[r]; ok {
		return Command{Kind: CmdMove, DX: d[0], DY: d[1]}
	}

	switch r {
	case '.', '5':
		return Command{Kind: CmdWait}
	case 'g':
		return Command{Kind: CmdPickup}
	case 'i':
		return Command{Kind: CmdOpenUse}
	case 'd':
		return Command{Kind: CmdOpenDrop}
	}
	return Command{}
}
