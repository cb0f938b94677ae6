package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color used for board cells.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors matching the classic palette.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorBorder = RGB(93, 216, 228)
	ColorApple  = RGB(255, 0, 0)
	ColorSnake  = RGB(0, 255, 0)
)

// ParseColor parses a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
