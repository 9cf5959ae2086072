package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = "#" + strings.TrimPrefix(hex, "#")
	if len(hex) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return FromColorful(c), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// FromColorful converts a colorful.Color to a tcell RGB color.
func FromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ToColorful converts a tcell color to a colorful.Color for blending.
func ToColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func colorOrWhite(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
