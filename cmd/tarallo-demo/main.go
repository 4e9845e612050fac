// Command tarallo-demo shows a tab bar docked to the bottom of a window,
// with one colored page per item. Tap or drag the bar with the mouse,
// cycle items with the arrow keys, flip pages with PageUp/PageDown to
// watch the bar follow the pager, or press S to swap the bar between its
// stacked and side-by-side styles.
//
// Environment:
//
//	TARALLO_LANG           locale for item titles (e.g. "it", "fr")
//	TARALLO_FONT           path to a TTF face for labels
//	TARALLO_TOUCH_DEVICE   evdev touchscreen to read directly (e.g. /dev/input/event1)
//	TARALLO_WINDOW_WIDTH   initial window width in pixels
//	TARALLO_WINDOW_HEIGHT  initial window height in pixels
//	TARALLO_LOG            log file path; logs also go to stdout
//	TARALLO_DEBUG          set to any value for debug logging
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo"
	"github.com/BrandonKowalski/tarallo/pkg/tarallo/menu"
	"github.com/BrandonKowalski/tarallo/pkg/tarallo/sdlui"
)

//go:embed assets
var assets embed.FS

const (
	windowWidth     = 640
	windowHeight    = 480
	barHeight       = 72
	defaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
)

var pageColors = []tarallo.Color{
	tarallo.RGB(0x264653),
	tarallo.RGB(0x2A9D8F),
	tarallo.RGB(0xE8985E),
	tarallo.RGB(0x7D6B91),
}

func main() {
	if p := os.Getenv("TARALLO_LOG"); p != "" {
		tarallo.SetLogPath(p)
	}
	if os.Getenv("TARALLO_DEBUG") != "" {
		tarallo.SetLogLevel(slog.LevelDebug)
		tarallo.SetInternalLogLevel(slog.LevelDebug)
	}
	defer tarallo.CloseLogger()

	if err := run(); err != nil {
		tarallo.GetLogger().Error("Demo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	logger := tarallo.GetLogger()

	cfg, items, err := loadMenu()
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("init SDL: %w", err)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init SDL_ttf: %w", err)
	}
	defer ttf.Quit()

	img.Init(img.INIT_PNG | img.INIT_JPG)
	defer img.Quit()

	winW, winH := windowSize()
	window, err := sdl.CreateWindow("tarallo", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winW, winH, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	info, err := renderer.GetInfo()
	hasVSync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	view, err := sdlui.NewView(renderer, cfg, sdlui.ViewOptions{FontPath: fontPath()})
	if err != nil {
		return err
	}
	defer view.Destroy()

	view.Bar.LoadItems(items)
	placeBar(view, renderer)

	page := view.Bar.ActiveIndex()
	view.Bar.AttachPager(tarallo.PagerFunc(func(index int) {
		page = index
	}))
	unsubscribe := view.Bar.Subscribe(func(ev tarallo.SelectionEvent) {
		logger.Info("Selection", "kind", ev.Kind.String(), "index", ev.Index)
	})
	defer unsubscribe()

	var touchEvents <-chan sdlui.PointerEvent
	if dev := os.Getenv("TARALLO_TOUCH_DEVICE"); dev != "" {
		w, h, _ := renderer.GetOutputSize()
		touch, err := sdlui.OpenTouchReader(dev, float64(w), float64(h))
		if err != nil {
			logger.Warn("Touchscreen unavailable, continuing without it", "device", dev, "error", err)
		} else {
			defer touch.Close()
			touchEvents = touch.Events()
		}
	}

	var lastPresent uint64
	running := true
	for running {
		event := sdl.WaitEventTimeout(16)
		for ; event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					placeBar(view, renderer)
				}

			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					switch e.Keysym.Sym {
					case sdl.K_ESCAPE, sdl.K_q:
						running = false
						continue
					case sdl.K_PAGEDOWN:
						page = flipPage(view.Bar, page, 1)
						continue
					case sdl.K_PAGEUP:
						page = flipPage(view.Bar, page, -1)
						continue
					case sdl.K_s:
						swapStyle(view.Bar)
						continue
					}
				}
				view.HandleEvent(event)

			default:
				view.HandleEvent(event)
			}
		}

		if touchEvents != nil {
			touchEvents = drainTouch(touchEvents, view)
		}

		if view.TakeDirty() || view.Animating() {
			bg := pageColors[page%len(pageColors)]
			renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
			renderer.Clear()
			view.Draw(time.Now())
			renderer.Present()

			// Pace frames by hand when the renderer has no vsync.
			if !hasVSync {
				now := sdl.GetTicks64()
				if elapsed := now - lastPresent; elapsed < 16 {
					sdl.Delay(uint32(16 - elapsed))
				}
				lastPresent = sdl.GetTicks64()
			}
		}
	}
	return nil
}

// loadMenu parses the embedded definition with titles localized per
// TARALLO_LANG and rewrites icon references to the embedded file contents.
func loadMenu() (tarallo.Config, []tarallo.Item, error) {
	bundle := menu.NewBundle(language.English)
	if err := loadLocales(bundle); err != nil {
		return tarallo.Config{}, nil, err
	}

	var langs []string
	if lang := os.Getenv("TARALLO_LANG"); lang != "" {
		langs = append(langs, lang)
	}
	localizer := i18n.NewLocalizer(bundle, langs...)

	data, err := assets.ReadFile("assets/menu.toml")
	if err != nil {
		return tarallo.Config{}, nil, err
	}
	cfg, items, err := menu.Parse(data, menu.Options{Localizer: localizer})
	if err != nil {
		return cfg, nil, err
	}

	for i := range items {
		ref, ok := items[i].Icon.(string)
		if !ok {
			continue
		}
		icon, err := assets.ReadFile(path.Join("assets", ref))
		if err != nil {
			return cfg, nil, fmt.Errorf("missing embedded icon %s: %w", ref, err)
		}
		items[i].Icon = icon
	}
	return cfg, items, nil
}

func loadLocales(bundle *i18n.Bundle) error {
	entries, err := fs.ReadDir(assets, "assets/locales")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		data, err := assets.ReadFile(path.Join("assets/locales", entry.Name()))
		if err != nil {
			return err
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return fmt.Errorf("locale %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// flipPage simulates the pager changing pages on its own, the way a content
// swipe would. The pager side moves first, then the bar follows through
// NotifyPageChanged, which does not echo back. Returns the page now showing.
func flipPage(bar *tarallo.Bar, page, delta int) int {
	count := len(bar.Items())
	if count == 0 {
		return page
	}
	next := (page + delta + count) % count
	if err := bar.NotifyPageChanged(next); err != nil {
		tarallo.GetLogger().Warn("Page flip rejected", "page", next, "error", err)
		return page
	}
	return next
}

// swapStyle flips the bar between its two presentation styles in place.
func swapStyle(bar *tarallo.Bar) {
	cfg := bar.Config()
	if cfg.Style == tarallo.StyleStacked {
		cfg.Style = tarallo.StyleSideBySide
	} else {
		cfg.Style = tarallo.StyleStacked
	}
	bar.Reconfigure(cfg)
}

// drainTouch forwards every queued touchscreen event, returning nil once
// the reader closes its channel.
func drainTouch(events <-chan sdlui.PointerEvent, view *sdlui.View) <-chan sdlui.PointerEvent {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			view.HandlePointer(ev)
		default:
			return events
		}
	}
}

func placeBar(view *sdlui.View, renderer *sdl.Renderer) {
	w, h, err := renderer.GetOutputSize()
	if err != nil {
		return
	}
	view.SetRect(sdl.Rect{X: 0, Y: h - barHeight, W: w, H: barHeight})
}

func fontPath() string {
	if p := os.Getenv("TARALLO_FONT"); p != "" {
		return p
	}
	return defaultFontPath
}

func windowSize() (int32, int32) {
	w := int32(windowWidth)
	h := int32(windowHeight)
	if v := os.Getenv("TARALLO_WINDOW_WIDTH"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			w = int32(n)
		} else {
			tarallo.GetLogger().Warn("Invalid TARALLO_WINDOW_WIDTH; using default", "value", v)
		}
	}
	if v := os.Getenv("TARALLO_WINDOW_HEIGHT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			h = int32(n)
		} else {
			tarallo.GetLogger().Warn("Invalid TARALLO_WINDOW_HEIGHT; using default", "value", v)
		}
	}
	return w, h
}
