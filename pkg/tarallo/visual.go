package tarallo

import "math"

// Phase describes what the indicator is doing right now.
type Phase int

const (
	// PhaseIdle means the indicator is at rest on the active item.
	PhaseIdle Phase = iota
	// PhaseDragging means the indicator is pinned to the finger.
	PhaseDragging
	// PhaseSnapping means the indicator is animating onto a selection.
	PhaseSnapping
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSnapping:
		return "snapping"
	default:
		return "unknown"
	}
}

// ItemVisual is everything a renderer needs to paint one item for the
// current frame. Offsets live in the embedded StyleGeometry and are relative
// to (CellCenterX, cell middle Y).
type ItemVisual struct {
	Index       int
	Fraction    float64
	CellCenterX float64
	LabelText   string
	HasIcon     bool
	// Icon is the item's opaque icon handle, passed through for the
	// renderer to resolve.
	Icon any

	StyleGeometry
}

// fractionAt is the triangular proximity kernel: 1 when the indicator sits
// exactly on cell i's center, falling linearly to 0 at one cell width away.
// At most two adjacent cells are nonzero for any indicator position.
func fractionAt(l Layout, location float64, i int) float64 {
	f := 1 - math.Abs(l.CenterX(i)-location)/l.ItemWidth
	return clamp01(f)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
