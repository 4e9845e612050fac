package tarallo

import "time"

// Corner selects corners of the bar background for rounding. Values combine
// as a bitmask.
type Corner uint8

const (
	CornerTopLeft Corner = 1 << iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft

	// CornersNone draws a plain rectangle.
	CornersNone Corner = 0
	// CornersTop rounds only the top edge, the usual look for a bar docked
	// to the bottom of the screen.
	CornersTop = CornerTopLeft | CornerTopRight
	// CornersAll rounds every corner, for floating bars.
	CornersAll = CornerTopLeft | CornerTopRight | CornerBottomRight | CornerBottomLeft
)

// Config controls the bar's appearance and motion. It is read at
// construction and can be replaced wholesale with Bar.Reconfigure; fields
// are never mutated in place.
type Config struct {
	// Background fills the bar; CornerRadius and CornerMask round it.
	Background   Color
	CornerRadius float64
	CornerMask   Corner

	// IndicatorColor fills the sliding pill. IndicatorMargin insets it
	// vertically from the bar edges and IndicatorRadius rounds it.
	IndicatorColor  Color
	IndicatorRadius float64
	IndicatorMargin float64

	// InactiveTint and ActiveTint are the endpoints every per-item color
	// blends between as its selection fraction moves.
	InactiveTint Color
	ActiveTint   Color

	TextSize float64
	IconSize float64

	// SideMargin insets the item track from both bar edges. ItemPadding is
	// the icon-to-label gap, and the horizontal label inset for text-only
	// items.
	SideMargin  float64
	ItemPadding float64

	// Style arranges each item's icon and label. StyleStacked puts the
	// label under the icon; StyleSideBySide unfolds it to the right.
	Style PresentationStyle

	// AlwaysShowText keeps labels visible on unselected items instead of
	// fading them in with selection.
	AlwaysShowText bool

	// SnapDuration is the indicator's travel time per snap, regardless of
	// distance.
	SnapDuration time.Duration

	// SnapOvershoot is the easing tension: how far the indicator shoots
	// past its target before settling back. Zero means the default, not
	// "no overshoot".
	SnapOvershoot float64

	// DragSlop is how far a press may travel before it stops being a tap
	// and the indicator starts following the finger.
	DragSlop float64

	// MinTextSize floors the auto-fit shrink for text-only items.
	MinTextSize float64
}

// DefaultConfig returns the stock look: a white top-rounded bar with a blue
// pill, stacked items and a 300ms snap.
func DefaultConfig() Config {
	return Config{
		Background:      RGB(0xFFFFFF),
		CornerRadius:    20,
		CornerMask:      CornersTop,
		IndicatorColor:  RGB(0x2D6CDF),
		IndicatorRadius: 12,
		IndicatorMargin: 6,
		InactiveTint:    RGB(0x404040),
		ActiveTint:      RGB(0xFFFFFF),
		TextSize:        15,
		IconSize:        28,
		SideMargin:      10,
		ItemPadding:     4,
		Style:           StyleStacked,
		SnapDuration:    300 * time.Millisecond,
		SnapOvershoot:   2.0,
		DragSlop:        10,
		MinTextSize:     DefaultMinTextSize,
	}
}

// withDefaults fills the behavioral fields a hand-built Config commonly
// leaves zero. Visual fields are taken as given: transparent colors and
// square corners are legitimate choices.
func (c Config) withDefaults() Config {
	if c.Style == nil {
		c.Style = StyleStacked
	}
	if c.SnapDuration == 0 {
		c.SnapDuration = 300 * time.Millisecond
	}
	if c.SnapOvershoot == 0 {
		c.SnapOvershoot = 2.0
	}
	if c.DragSlop == 0 {
		c.DragSlop = 10
	}
	if c.MinTextSize == 0 {
		c.MinTextSize = DefaultMinTextSize
	}
	return c
}
