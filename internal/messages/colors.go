package messages

import "github.com/gdamore/tcell/v2"

// Palette used by the message log and status panel.
var (
	White   = tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	Black   = tcell.NewRGBColor(0x00, 0x00, 0x00)
	Red     = tcell.NewRGBColor(0xFF, 0x00, 0x00)
	Welcome = tcell.NewRGBColor(0x20, 0xA0, 0xFF)

	PlayerAttack = tcell.NewRGBColor(0xE0, 0xE0, 0xE0)
	EnemyAttack  = tcell.NewRGBColor(0xFF, 0xC0, 0xC0)
	PlayerDie    = tcell.NewRGBColor(0xFF, 0x30, 0x30)
	EnemyDie     = tcell.NewRGBColor(0xFF, 0xA0, 0x30)

	Impossible      = tcell.NewRGBColor(0x80, 0x80, 0x80)
	NeedsTarget     = tcell.NewRGBColor(0x3F, 0xFF, 0xFF)
	StatusEffect    = tcell.NewRGBColor(0x3F, 0xFF, 0x3F)
	HealthRecovered = tcell.NewRGBColor(0x00, 0xFF, 0x00)
	Pickup          = tcell.NewRGBColor(0xFF, 0xFF, 0xFF)

	BarText   = White
	BarFilled = tcell.NewRGBColor(0x00, 0x60, 0x00)
	BarEmpty  = tcell.NewRGBColor(0x40, 0x10, 0x10)
)
