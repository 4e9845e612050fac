package sdlui

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo/internal"
)

// PointerKind says what a pointer just did.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is one pointer transition in screen pixels, ready for
// View.HandlePointer.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

const touchEventBufferSize = 16

// TouchReader reads a touchscreen's evdev device directly, for devices
// where SDL has no touch driver. Raw absolute coordinates are scaled to the
// screen size and grouped into PointerEvents on each sync report.
//
// Events arrive on a buffered channel and are dropped when the host falls
// behind; coalescing stale motion beats blocking the device read.
type TouchReader struct {
	dev     *evdev.InputDevice
	events  chan PointerEvent
	running *atomic.Bool

	screenW, screenH float64
	xAxis, yAxis     absAxis
}

type absAxis struct {
	min, max int32
}

// scale maps a raw axis value onto [0, span).
func (a absAxis) scale(raw int32, span float64) float64 {
	if a.max <= a.min {
		return float64(raw)
	}
	return float64(raw-a.min) / float64(a.max-a.min) * span
}

// OpenTouchReader opens the touchscreen at path, typically
// /dev/input/eventN. screenW and screenH are the pixel size raw coordinates
// scale to, usually the renderer output size.
func OpenTouchReader(path string, screenW, screenH float64) (*TouchReader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sdlui: open touch device %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("sdlui: abs info for %s: %w", path, err)
	}

	r := &TouchReader{
		dev:     dev,
		events:  make(chan PointerEvent, touchEventBufferSize),
		running: atomic.NewBool(true),
		screenW: screenW,
		screenH: screenH,
		xAxis:   axisFromInfos(infos, evdev.ABS_X, evdev.ABS_MT_POSITION_X),
		yAxis:   axisFromInfos(infos, evdev.ABS_Y, evdev.ABS_MT_POSITION_Y),
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Opened touch device",
		"path", path, "name", name,
		"x_range", fmt.Sprintf("%d-%d", r.xAxis.min, r.xAxis.max),
		"y_range", fmt.Sprintf("%d-%d", r.yAxis.min, r.yAxis.max))

	go r.loop()
	return r, nil
}

func axisFromInfos(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) absAxis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return absAxis{min: info.Minimum, max: info.Maximum}
		}
	}
	return absAxis{}
}

// Events returns the pointer event stream. The channel closes after Close,
// or if the device read fails.
func (r *TouchReader) Events() <-chan PointerEvent {
	return r.events
}

// Close stops the read loop and releases the device. Safe to call more than
// once.
func (r *TouchReader) Close() error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}
	// Closing the fd unblocks the loop's ReadOne.
	return r.dev.Close()
}

func (r *TouchReader) loop() {
	defer close(r.events)

	var (
		x, y    int32
		down    bool
		touched bool
		edge    bool
	)
	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.running.Load() {
				internal.GetInternalLogger().Warn("Touch device read failed", "error", err)
				r.running.Store(false)
			}
			return
		}

		switch ev.Type {
		case evdev.EV_ABS:
			switch ev.Code {
			case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
				x = ev.Value
				touched = true
			case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
				y = ev.Value
				touched = true
			}

		case evdev.EV_KEY:
			if ev.Code == evdev.BTN_TOUCH {
				down = ev.Value != 0
				edge = true
			}

		case evdev.EV_SYN:
			if ev.Code != evdev.SYN_REPORT {
				continue
			}
			kind, ok := frameKind(down, edge, touched)
			edge, touched = false, false
			if !ok {
				continue
			}
			r.send(PointerEvent{
				Kind: kind,
				X:    r.xAxis.scale(x, r.screenW),
				Y:    r.yAxis.scale(y, r.screenH),
			})
		}
	}
}

// frameKind classifies one sync frame. A BTN_TOUCH edge wins; otherwise
// coordinate traffic while down is motion, and anything else is an empty
// frame to skip.
func frameKind(down, edge, touched bool) (PointerKind, bool) {
	switch {
	case edge && down:
		return PointerDown, true
	case edge:
		return PointerUp, true
	case down && touched:
		return PointerMove, true
	default:
		return 0, false
	}
}

func (r *TouchReader) send(ev PointerEvent) {
	select {
	case r.events <- ev:
	default:
	}
}
