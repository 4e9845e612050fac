package tarallo

import "time"

// Bar is the interaction and animation engine for one tab bar. It owns the
// item list, the active selection, the indicator position and the
// tap-versus-drag state machine, and turns those into per-item visuals each
// frame.
//
// A Bar is not safe for concurrent use. Call every method from the host's
// event/render goroutine; SDL programs already live on one thread, and
// hosts that read input elsewhere (see sdlui.TouchReader) funnel it into
// that loop first.
type Bar struct {
	cfg   Config
	items []Item

	width    float64
	height   float64
	layout   Layout
	layoutOK bool

	active   int
	previous int
	phase    Phase

	// location is the indicator center in bar-local pixels. It has no
	// meaningful value until located is set by the first layout.
	location float64
	located  bool

	anim      animator
	gesture   gestureTracker
	listeners listenerList

	measure TextMeasurer
	repaint func()

	pager      Pager
	pagerQuiet bool
}

// NewBar creates an empty bar. measure may be nil, in which case label
// widths are estimated heuristically; repaint may be nil for hosts that
// redraw every frame regardless.
func NewBar(cfg Config, measure TextMeasurer, repaint func()) *Bar {
	if measure == nil {
		measure = MeasureFunc(approxTextWidth)
	}
	if repaint == nil {
		repaint = func() {}
	}
	b := &Bar{
		cfg:      cfg.withDefaults(),
		previous: -1,
		measure:  measure,
		repaint:  repaint,
	}
	b.gesture.slop = b.cfg.DragSlop
	return b
}

// Subscribe registers fn for selection events and returns a function that
// removes exactly this registration. Events are delivered synchronously, in
// registration order.
func (b *Bar) Subscribe(fn func(SelectionEvent)) (unsubscribe func()) {
	return b.listeners.add(fn)
}

// LoadItems replaces the item list wholesale. The active index is kept if
// still in range and clamped to the last item otherwise; any gesture or
// animation in progress is abandoned and the indicator recenters on the
// active item. An empty slice is allowed and turns drawing into a no-op.
func (b *Bar) LoadItems(items []Item) {
	b.anim.Cancel()
	b.gesture.Reset()
	b.phase = PhaseIdle
	b.items = append([]Item(nil), items...)
	if b.active >= len(b.items) {
		b.active = max(len(b.items)-1, 0)
	}
	b.previous = -1
	b.relayout()
	b.repaint()
}

// Items returns a copy of the loaded items.
func (b *Bar) Items() []Item {
	return append([]Item(nil), b.items...)
}

// SetActiveItem selects an item programmatically, running the same snap
// animation and event delivery as a completed gesture.
func (b *Bar) SetActiveItem(index int) error {
	if index < 0 || index >= len(b.items) {
		return &IndexOutOfRangeError{Index: index, Count: len(b.items)}
	}
	b.snapTo(index)
	return nil
}

// SelectNext selects the item after the active one, wrapping past the end.
func (b *Bar) SelectNext() {
	if len(b.items) == 0 {
		return
	}
	b.snapTo((b.active + 1) % len(b.items))
}

// SelectPrev selects the item before the active one, wrapping past the
// start.
func (b *Bar) SelectPrev() {
	if len(b.items) == 0 {
		return
	}
	b.snapTo((b.active + len(b.items) - 1) % len(b.items))
}

// PointerDown begins gesture tracking at x in bar-local pixels. Hit-testing
// the bar's on-screen rectangle is the host's job; y is accepted for
// symmetry but the bar spans its full height. Any in-flight snap is
// cancelled so the indicator is free to follow the finger.
func (b *Bar) PointerDown(x, y float64) {
	if !b.usable() {
		return
	}
	b.anim.Cancel()
	b.gesture.Down(x)
}

// PointerMove feeds pointer motion. Below the drag slop nothing changes;
// beyond it the gesture becomes a drag and the indicator tracks x 1:1,
// clamped to the item track.
func (b *Bar) PointerMove(x, y float64) {
	if !b.usable() {
		return
	}
	if !b.gesture.Move(x) {
		return
	}
	b.phase = PhaseDragging
	b.location = b.layout.ClampToTrack(x)
	b.located = true
	b.repaint()
}

// PointerUp ends the gesture and snaps. A tap selects the cell under the
// release point; a drag selects the cell whose center is nearest the
// indicator.
func (b *Bar) PointerUp(x, y float64) {
	if !b.usable() {
		b.gesture.Reset()
		return
	}
	wasDrag, tracked := b.gesture.Up()
	if !tracked {
		return
	}
	if wasDrag {
		b.snapTo(b.layout.NearestIndex(b.location))
	} else {
		b.snapTo(b.layout.IndexAt(x))
	}
}

// SetSize tells the bar its drawable size in pixels. The layout is rebuilt;
// an in-flight snap is abandoned and the indicator recenters on the active
// item, while a drag in progress just gets re-clamped to the new track.
func (b *Bar) SetSize(width, height float64) {
	b.width = width
	b.height = height
	b.relayout()
	b.repaint()
}

// Size returns the last size handed to SetSize.
func (b *Bar) Size() (width, height float64) {
	return b.width, b.height
}

// Reconfigure replaces the configuration. Geometry-affecting fields take
// hold immediately, which abandons any in-flight snap the same way a resize
// does; motion fields apply from the next snap.
func (b *Bar) Reconfigure(cfg Config) {
	b.cfg = cfg.withDefaults()
	b.gesture.slop = b.cfg.DragSlop
	b.relayout()
	b.repaint()
}

// Config returns the active configuration.
func (b *Bar) Config() Config { return b.cfg }

// Tick advances the snap animation, if one is in flight. Hosts call it once
// per frame with the frame clock's time.
func (b *Bar) Tick(now time.Time) {
	b.anim.Tick(now)
}

// Animating reports whether a snap is in flight, letting hosts keep
// producing frames until motion settles.
func (b *Bar) Animating() bool { return b.anim.Running() }

// ActiveIndex returns the selected item's index (0 while the bar is empty).
func (b *Bar) ActiveIndex() int { return b.active }

// PreviousIndex returns the source of the current or most recent selection
// transition, or -1 when there has been none since items were loaded.
func (b *Bar) PreviousIndex() int { return b.previous }

// Phase reports what the indicator is doing.
func (b *Bar) Phase() Phase { return b.phase }

// Indicator returns the indicator pill's center X in bar-local pixels. ok
// is false before the first usable layout, when no position exists yet.
func (b *Bar) Indicator() (x float64, ok bool) {
	return b.location, b.located
}

// Layout returns the current cell geometry. ok is false while the layout is
// degenerate: no items, or no width yet.
func (b *Bar) Layout() (Layout, bool) {
	return b.layout, b.layoutOK
}

// Visuals computes the per-item paint state for the current frame. It
// returns nil while the layout is degenerate.
func (b *Bar) Visuals() []ItemVisual {
	if !b.usable() || !b.located {
		return nil
	}
	visuals := make([]ItemVisual, len(b.items))
	for i, item := range b.items {
		fraction := fractionAt(b.layout, b.location, i)
		if b.phase == PhaseSnapping && i != b.active && i != b.previous {
			// Only the endpoints of a snap respond; items the indicator
			// passes over stay at rest.
			fraction = 0
		}
		visuals[i] = b.itemVisual(i, item, fraction)
	}
	return visuals
}

func (b *Bar) itemVisual(index int, item Item, fraction float64) ItemVisual {
	v := ItemVisual{
		Index:       index,
		Fraction:    fraction,
		CellCenterX: b.layout.CenterX(index),
		LabelText:   item.Title,
		HasIcon:     item.HasIcon(),
		Icon:        item.Icon,
	}
	if !item.HasIcon() {
		// Text-only items bypass the presentation style: a centered label,
		// auto-fitted to its cell.
		size := FitTextSize(item.Title, b.layout.ItemWidth-2*b.cfg.ItemPadding,
			b.cfg.TextSize, b.cfg.MinTextSize, b.measure)
		v.StyleGeometry = StyleGeometry{
			LabelShown:   true,
			LabelSize:    size,
			LabelColor:   BlendColor(fraction, b.cfg.InactiveTint, b.cfg.ActiveTint),
			ContentWidth: b.measure.TextWidth(item.Title, size),
		}
		return v
	}
	labelWidth := b.measure.TextWidth(item.Title, b.cfg.TextSize)
	v.StyleGeometry = b.cfg.Style.ItemGeometry(fraction, b.cfg, labelWidth)
	return v
}

// snapTo commits a selection and animates the indicator onto it.
func (b *Bar) snapTo(index int) {
	// Cancel first: the outgoing run's end handler must not observe, and
	// reset, the phase this snap is about to set.
	b.anim.Cancel()

	reselect := index == b.active
	if !reselect {
		b.previous = b.active
		b.active = index
	}
	if !b.usable() {
		// Degenerate layout: remember the selection, skip events and
		// motion.
		b.phase = PhaseIdle
		b.repaint()
		return
	}
	if !b.located {
		b.recenter()
	}
	b.phase = PhaseSnapping
	if reselect {
		b.listeners.notify(SelectionEvent{Kind: Reselected, Index: index})
	} else {
		b.listeners.notify(SelectionEvent{Kind: Selected, Index: index})
		if b.pager != nil && !b.pagerQuiet {
			b.pager.ShowPage(index)
		}
	}
	b.anim.duration = b.cfg.SnapDuration
	b.anim.tension = b.cfg.SnapOvershoot
	b.anim.Start(b.location, b.layout.CenterX(b.active), b.animTick, b.animEnd)
	b.repaint()
}

func (b *Bar) animTick(value float64) {
	b.location = value
	b.repaint()
}

func (b *Bar) animEnd(completed bool) {
	if b.phase == PhaseSnapping {
		b.phase = PhaseIdle
	}
	b.repaint()
}

// relayout rebuilds cell geometry after a size, item or config change and
// reconciles the indicator with it.
func (b *Bar) relayout() {
	b.refreshLayout()
	if !b.layoutOK {
		b.located = false
		return
	}
	if b.gesture.Dragging() {
		b.location = b.layout.ClampToTrack(b.location)
		return
	}
	if b.anim.Running() {
		b.anim.Cancel()
	}
	b.recenter()
}

func (b *Bar) refreshLayout() {
	layout, err := NewLayout(b.width, len(b.items), b.cfg.SideMargin)
	b.layout = layout
	b.layoutOK = err == nil
}

func (b *Bar) recenter() {
	b.location = b.layout.CenterX(b.active)
	b.located = true
}

func (b *Bar) usable() bool { return b.layoutOK }
