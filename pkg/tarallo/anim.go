package tarallo

import "time"

// overshootEase maps linear progress t in [0, 1] through a cubic that passes
// its target and settles back. tension controls how far past 1.0 the curve
// peaks; 0 degenerates to a plain ease-out.
func overshootEase(t, tension float64) float64 {
	t--
	return t*t*((tension+1)*t+tension) + 1
}

// animator runs one value interpolation at a time over a fixed duration,
// fed by the host's frame clock. Start replaces any in-flight run after
// cancelling it, so there are never two concurrent interpolations.
//
// The clock anchors on the first Tick after Start rather than on Start
// itself: selections happen during event handling, where no frame timestamp
// exists yet.
type animator struct {
	duration time.Duration
	tension  float64

	active  bool
	started bool
	startAt time.Time
	from    float64
	to      float64
	onTick  func(value float64)
	onEnd   func(completed bool)
}

// Start begins interpolating from one value to another. onTick receives
// eased values, which overshoot past to before settling; onEnd fires exactly
// once, with completed=false if the run is cancelled or replaced.
func (a *animator) Start(from, to float64, onTick func(float64), onEnd func(bool)) {
	a.Cancel()
	a.active = true
	a.started = false
	a.from = from
	a.to = to
	a.onTick = onTick
	a.onEnd = onEnd
}

// Cancel stops the in-flight run, if any. Idempotent.
func (a *animator) Cancel() {
	if !a.active {
		return
	}
	onEnd := a.onEnd
	a.clear()
	if onEnd != nil {
		onEnd(false)
	}
}

// Running reports whether a run is in flight.
func (a *animator) Running() bool { return a.active }

// Tick advances the run to the given frame time. On the final tick the
// value lands exactly on the target before onEnd(true) fires.
func (a *animator) Tick(now time.Time) {
	if !a.active {
		return
	}
	if !a.started {
		a.started = true
		a.startAt = now
	}
	progress := 1.0
	if a.duration > 0 {
		progress = float64(now.Sub(a.startAt)) / float64(a.duration)
	}
	if progress >= 1 {
		to, onTick, onEnd := a.to, a.onTick, a.onEnd
		a.clear()
		if onTick != nil {
			onTick(to)
		}
		if onEnd != nil {
			onEnd(true)
		}
		return
	}
	value := a.from + (a.to-a.from)*overshootEase(progress, a.tension)
	if a.onTick != nil {
		a.onTick(value)
	}
}

func (a *animator) clear() {
	a.active = false
	a.started = false
	a.onTick = nil
	a.onEnd = nil
}
