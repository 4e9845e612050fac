package tarallo

// SelectionKind tags a selection event.
type SelectionKind int

const (
	// Selected fires when the active item changes, by gesture or
	// programmatically.
	Selected SelectionKind = iota
	// Reselected fires when the already-active item is chosen again.
	Reselected
)

func (k SelectionKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Reselected:
		return "reselected"
	default:
		return "unknown"
	}
}

// SelectionEvent is delivered to subscribers once per resolved selection:
// a released gesture, a SetActiveItem, SelectNext/SelectPrev, or a page
// change relayed through NotifyPageChanged. Nothing is delivered while a
// drag is still in progress.
type SelectionEvent struct {
	Kind  SelectionKind
	Index int
}

type listenerEntry struct {
	id int
	fn func(SelectionEvent)
}

// listenerList dispatches selection events in registration order. Entries
// carry identities so a single listener can be removed without affecting
// the others.
type listenerList struct {
	nextID  int
	entries []listenerEntry
}

func (l *listenerList) add(fn func(SelectionEvent)) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

func (l *listenerList) notify(ev SelectionEvent) {
	// Dispatch over a snapshot so listeners can unsubscribe (themselves or
	// others) mid-event without skewing the iteration.
	snapshot := make([]listenerEntry, len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		e.fn(ev)
	}
}
