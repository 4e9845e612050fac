package tarallo

import "math"

// Layout maps item indices to horizontal pixel positions: a row of
// equal-width cells between two side margins. It is a pure value, recomputed
// whenever the bar is resized or its items are replaced.
type Layout struct {
	Width      float64
	SideMargin float64
	Count      int
	ItemWidth  float64
}

// NewLayout computes cell geometry for count items across width pixels.
// It returns ErrDegenerateLayout when there are no items or the margins
// leave no track to divide.
func NewLayout(width float64, count int, sideMargin float64) (Layout, error) {
	l := Layout{Width: width, SideMargin: sideMargin, Count: count}
	if count <= 0 {
		return l, ErrDegenerateLayout
	}
	track := width - 2*sideMargin
	if track <= 0 {
		return l, ErrDegenerateLayout
	}
	l.ItemWidth = track / float64(count)
	return l, nil
}

// CenterX returns the horizontal center of cell i.
func (l Layout) CenterX(i int) float64 {
	return l.SideMargin + float64(i)*l.ItemWidth + l.ItemWidth/2
}

// IndexAt resolves the cell containing x. Taps select the touched cell.
func (l Layout) IndexAt(x float64) int {
	return clampIndex(int(math.Floor((x-l.SideMargin)/l.ItemWidth)), l.Count)
}

// NearestIndex resolves the cell whose center is closest to x. Drag releases
// snap to the nearest center rather than the cell under the finger.
func (l Layout) NearestIndex(x float64) int {
	return clampIndex(int(math.Round((x-l.SideMargin)/l.ItemWidth-0.5)), l.Count)
}

// TrackMin returns the leftmost reachable indicator center.
func (l Layout) TrackMin() float64 { return l.SideMargin + l.ItemWidth/2 }

// TrackMax returns the rightmost reachable indicator center.
func (l Layout) TrackMax() float64 { return l.Width - l.SideMargin - l.ItemWidth/2 }

// ClampToTrack limits x to the reachable indicator centers, so the pill
// never slides past the first or last cell while dragging.
func (l Layout) ClampToTrack(x float64) float64 {
	return math.Min(math.Max(x, l.TrackMin()), l.TrackMax())
}

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
