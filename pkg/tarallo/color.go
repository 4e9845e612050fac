package tarallo

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an ARGB color with 8 bits per channel. The zero value is fully
// transparent black.
type Color struct {
	A, R, G, B uint8
}

// Transparent is fully transparent black, the fade-from color for labels
// that appear as an item becomes selected.
var Transparent = Color{}

// RGB returns an opaque color from a 0xRRGGBB value.
func RGB(rgb uint32) Color {
	return Color{
		A: 0xFF,
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
	}
}

// ARGB returns a color from a 0xAARRGGBB value.
func ARGB(argb uint32) Color {
	return Color{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// String renders the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" (leading '#' optional).
// Six-digit colors are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("tarallo: invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return RGB(uint32(v)), nil
	case 8:
		return ARGB(uint32(v)), nil
	default:
		return Color{}, fmt.Errorf("tarallo: invalid color %q: want 6 or 8 hex digits", s)
	}
}

// BlendColor interpolates each channel linearly from a to b, truncating to
// whole channel values. fraction is not clamped here; callers clamp to
// [0, 1] before blending.
func BlendColor(fraction float64, a, b Color) Color {
	return Color{
		A: blendChannel(fraction, a.A, b.A),
		R: blendChannel(fraction, a.R, b.R),
		G: blendChannel(fraction, a.G, b.G),
		B: blendChannel(fraction, a.B, b.B),
	}
}

func blendChannel(fraction float64, a, b uint8) uint8 {
	return uint8(int(float64(a) + fraction*(float64(b)-float64(a))))
}

// BlendValue interpolates linearly between two scalars. Like BlendColor it
// does not clamp fraction.
func BlendValue(fraction, a, b float64) float64 {
	return a + fraction*(b-a)
}
