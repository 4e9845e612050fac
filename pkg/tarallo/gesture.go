package tarallo

import "math"

// gesturePhase tracks press classification. It is distinct from the bar's
// Phase: a press that never leaves the slop keeps the bar visually Idle.
type gesturePhase int

const (
	gestureIdle gesturePhase = iota
	gesturePending
	gestureDragging
)

// gestureTracker disambiguates taps from drags. A press enters Pending;
// travel beyond the slop promotes it to Dragging and it stays a drag for
// the rest of the gesture, even if the finger returns to the press point.
type gestureTracker struct {
	slop  float64
	phase gesturePhase
	downX float64
}

func (g *gestureTracker) Down(x float64) {
	g.phase = gesturePending
	g.downX = x
}

// Move feeds a pointer position and reports whether the gesture is (now) a
// drag. Motion without a preceding press is ignored.
func (g *gestureTracker) Move(x float64) bool {
	if g.phase == gesturePending && math.Abs(x-g.downX) > g.slop {
		g.phase = gestureDragging
	}
	return g.phase == gestureDragging
}

// Up ends the gesture. wasDrag tells the caller how to resolve the target;
// tracked is false for a stray release with no matching press.
func (g *gestureTracker) Up() (wasDrag, tracked bool) {
	wasDrag = g.phase == gestureDragging
	tracked = g.phase != gestureIdle
	g.phase = gestureIdle
	return wasDrag, tracked
}

func (g *gestureTracker) Dragging() bool { return g.phase == gestureDragging }

func (g *gestureTracker) Reset() { g.phase = gestureIdle }
