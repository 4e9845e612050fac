// Package sdlui binds the tarallo engine to SDL2. A View owns a Bar, feeds
// it pointer and key input from SDL events or a raw evdev touchscreen, and
// paints it onto an sdl.Renderer with fonts from SDL_ttf and icons decoded
// through SDL_image or rasterized from SVG.
package sdlui

import (
	"fmt"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo"
)

// ViewOptions configure the SDL-side resources of a View.
type ViewOptions struct {
	// FontPath locates the TTF face used for labels. Required.
	FontPath string

	// FontCacheSize caps how many point sizes stay open at once. Zero
	// means a small default.
	FontCacheSize int

	// IconCacheSize caps how many decoded icon textures stay alive. Zero
	// means a small default.
	IconCacheSize int
}

// View is a Bar wired to an SDL renderer. Drive selection and items through
// the embedded Bar; the View handles input routing, dirty tracking and
// painting.
//
// Like the engine it wraps, a View is single-threaded. Feed it events and
// call Draw from the same loop.
type View struct {
	Bar *tarallo.Bar

	renderer *sdl.Renderer
	rect     sdl.Rect
	fonts    *fontCache
	icons    *iconSource
	dirty    atomic.Bool

	// pressed latches a pointer that went down inside the bar, so motion
	// and release keep routing here even when the finger wanders out.
	pressed bool
}

// NewView creates a view drawing with renderer. Position it with SetRect
// and load items through v.Bar before the first Draw.
func NewView(renderer *sdl.Renderer, cfg tarallo.Config, opts ViewOptions) (*View, error) {
	if opts.FontPath == "" {
		return nil, fmt.Errorf("sdlui: ViewOptions.FontPath is required")
	}

	v := &View{
		renderer: renderer,
		fonts:    newFontCache(opts.FontPath, opts.FontCacheSize),
	}
	v.icons = newIconSource(renderer, cfg.IconSize, opts.IconCacheSize)
	v.Bar = tarallo.NewBar(cfg, v.fonts, v.invalidate)
	v.dirty.Store(true)
	return v, nil
}

// SetRect places the bar on screen and resizes the engine to match.
func (v *View) SetRect(rect sdl.Rect) {
	v.rect = rect
	v.Bar.SetSize(float64(rect.W), float64(rect.H))
}

// Rect returns the bar's on-screen rectangle.
func (v *View) Rect() sdl.Rect { return v.rect }

// HandleEvent feeds one SDL event to the bar and reports whether the event
// was consumed. Mouse buttons, mouse motion, touch fingers and the left and
// right arrow keys are understood; everything else passes through.
func (v *View) HandleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return v.pointerDown(float64(e.X), float64(e.Y))
		}
		return v.pointerUp(float64(e.X), float64(e.Y))

	case *sdl.MouseMotionEvent:
		return v.pointerMove(float64(e.X), float64(e.Y))

	case *sdl.TouchFingerEvent:
		x, y := v.fingerToPixels(e.X, e.Y)
		switch e.Type {
		case sdl.FINGERDOWN:
			return v.pointerDown(x, y)
		case sdl.FINGERMOTION:
			return v.pointerMove(x, y)
		case sdl.FINGERUP:
			return v.pointerUp(x, y)
		}
		return false

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return false
		}
		switch e.Keysym.Sym {
		case sdl.K_LEFT:
			v.Bar.SelectPrev()
			return true
		case sdl.K_RIGHT:
			v.Bar.SelectNext()
			return true
		}
		return false
	}
	return false
}

// HandlePointer feeds a pointer event that is already in screen pixels,
// the form TouchReader emits. It reports whether the event was consumed.
func (v *View) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		return v.pointerDown(ev.X, ev.Y)
	case PointerMove:
		return v.pointerMove(ev.X, ev.Y)
	case PointerUp:
		return v.pointerUp(ev.X, ev.Y)
	}
	return false
}

func (v *View) pointerDown(x, y float64) bool {
	if !v.contains(x, y) {
		return false
	}
	v.pressed = true
	v.Bar.PointerDown(x-float64(v.rect.X), y-float64(v.rect.Y))
	return true
}

func (v *View) pointerMove(x, y float64) bool {
	if !v.pressed {
		return false
	}
	v.Bar.PointerMove(x-float64(v.rect.X), y-float64(v.rect.Y))
	return true
}

func (v *View) pointerUp(x, y float64) bool {
	if !v.pressed {
		return false
	}
	v.pressed = false
	v.Bar.PointerUp(x-float64(v.rect.X), y-float64(v.rect.Y))
	return true
}

func (v *View) contains(x, y float64) bool {
	return x >= float64(v.rect.X) && x < float64(v.rect.X+v.rect.W) &&
		y >= float64(v.rect.Y) && y < float64(v.rect.Y+v.rect.H)
}

// fingerToPixels scales SDL's normalized touch coordinates to the render
// output size.
func (v *View) fingerToPixels(fx, fy float32) (float64, float64) {
	w, h, err := v.renderer.GetOutputSize()
	if err != nil {
		return float64(fx), float64(fy)
	}
	return float64(fx) * float64(w), float64(fy) * float64(h)
}

func (v *View) invalidate() {
	v.dirty.Store(true)
}

// TakeDirty reports whether anything changed since the last call and
// resets the flag. Hosts that skip idle frames redraw when this is true or
// Animating is.
func (v *View) TakeDirty() bool {
	return v.dirty.Swap(false)
}

// Animating reports whether the indicator is mid-snap.
func (v *View) Animating() bool { return v.Bar.Animating() }

// Draw advances the animation to now and paints the bar.
func (v *View) Draw(now time.Time) {
	v.Bar.Tick(now)

	cfg := v.Bar.Config()
	fillRoundedRect(v.renderer, v.rect, cfg.CornerRadius, cfg.CornerMask, cfg.Background)

	layout, ok := v.Bar.Layout()
	if !ok {
		return
	}
	midY := v.rect.Y + v.rect.H/2

	if x, located := v.Bar.Indicator(); located {
		margin := int32(math.Round(cfg.IndicatorMargin))
		pill := sdl.Rect{
			X: v.rect.X + int32(math.Round(x)) - (int32(math.Round(layout.ItemWidth))-2*margin)/2,
			Y: v.rect.Y + margin,
			W: int32(math.Round(layout.ItemWidth)) - 2*margin,
			H: v.rect.H - 2*margin,
		}
		fillRoundedRect(v.renderer, pill, cfg.IndicatorRadius, tarallo.CornersAll, cfg.IndicatorColor)
	}

	iconSize := int32(math.Round(cfg.IconSize))
	for _, vis := range v.Bar.Visuals() {
		cx := v.rect.X + int32(math.Round(vis.CellCenterX))
		if vis.HasIcon {
			drawIcon(v.renderer, v.icons.texture(vis.Icon),
				cx+int32(math.Round(vis.IconOffsetX)),
				midY+int32(math.Round(vis.IconOffsetY)),
				iconSize, vis.IconColor)
		}
		if vis.LabelShown && vis.LabelColor.A > 0 {
			font := v.fonts.font(int(math.Round(vis.LabelSize)))
			drawText(v.renderer, font, vis.LabelText,
				cx+int32(math.Round(vis.LabelOffsetX)),
				midY+int32(math.Round(vis.LabelOffsetY)),
				vis.LabelColor)
		}
	}
}

// Destroy releases fonts and cached icon textures. Textures handed in as
// *sdl.Texture icon handles are untouched.
func (v *View) Destroy() {
	v.fonts.destroy()
	v.icons.destroy()
}
