package internal

import "math"

// Corner mask bits. Values match the public tarallo.Corner constants, which
// this package cannot import.
const (
	maskTopLeft     = 1
	maskTopRight    = 2
	maskBottomRight = 4
	maskBottomLeft  = 8
)

// RowInset is the horizontal carve-out rounded corners leave on one pixel
// row of a rectangle.
type RowInset struct {
	Left  int32
	Right int32
}

// RoundedRowInsets computes, for every pixel row of a w by h rectangle, how
// far the fill must be inset on each side to round the corners named in
// mask with the given radius. Rows outside the corner arcs keep zero
// insets, so a renderer can fill them edge to edge. The radius is clamped
// to half the smaller dimension.
func RoundedRowInsets(w, h, radius int32, mask uint8) []RowInset {
	if h <= 0 || w <= 0 {
		return nil
	}
	insets := make([]RowInset, h)
	if radius <= 0 || mask == 0 {
		return insets
	}
	if half := min(w, h) / 2; radius > half {
		radius = half
	}
	r := float64(radius)
	for y := int32(0); y < radius; y++ {
		// Sample the arc at the row's vertical center.
		dy := r - (float64(y) + 0.5)
		inset := int32(math.Round(r - math.Sqrt(r*r-dy*dy)))
		if inset <= 0 {
			continue
		}
		bottom := h - 1 - y
		if mask&maskTopLeft != 0 {
			insets[y].Left = inset
		}
		if mask&maskTopRight != 0 {
			insets[y].Right = inset
		}
		if mask&maskBottomLeft != 0 {
			insets[bottom].Left = inset
		}
		if mask&maskBottomRight != 0 {
			insets[bottom].Right = inset
		}
	}
	return insets
}
