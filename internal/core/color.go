package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorSilver
)

// colorNames maps config-friendly names to colors.
var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorBrightGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBrightBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorBrightWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"brown":   ColorBrown,
	"gold":    ColorBrightYellow,
	"silver":  ColorSilver,
}

// ParseColor resolves a color name such as "gold" or "silver".
// Names are case-insensitive.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// RGB returns an approximate 24-bit value for frontends that draw pixels.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed, ColorBrightRed:
		return 220, 40, 40
	case ColorGreen, ColorBrightGreen:
		return 40, 190, 70
	case ColorYellow:
		return 230, 200, 40
	case ColorBrightYellow:
		return 255, 215, 0
	case ColorBlue, ColorBrightBlue:
		return 40, 90, 230
	case ColorMagenta, ColorBrightMagenta:
		return 200, 60, 200
	case ColorCyan, ColorBrightCyan:
		return 60, 200, 220
	case ColorOrange:
		return 255, 140, 0
	case ColorGray:
		return 140, 140, 140
	case ColorBrown:
		return 139, 69, 19
	case ColorSilver:
		return 192, 192, 192
	case ColorWhite, ColorBrightWhite:
		return 255, 255, 255
	default:
		return 0, 0, 0
	}
}
