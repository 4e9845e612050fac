package sdlui

import (
	"math"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo/internal"
)

const defaultFontCacheSize = 8

// fontCache opens one ttf.Font per point size on demand and keeps the most
// recently used ones. Label sizes vary continuously while an item folds or
// unfolds, but they round to a handful of integer sizes, so a small cache
// absorbs the churn.
//
// It also implements tarallo.TextMeasurer, which is how the engine sees
// real glyph metrics.
type fontCache struct {
	path    string
	fonts   map[int]*ttf.Font
	order   []int
	maxSize int
}

func newFontCache(path string, maxSize int) *fontCache {
	if maxSize <= 0 {
		maxSize = defaultFontCacheSize
	}
	return &fontCache{
		path:    path,
		fonts:   make(map[int]*ttf.Font),
		order:   make([]int, 0, maxSize),
		maxSize: maxSize,
	}
}

// font returns the face at the given point size, or nil when the file
// cannot be opened.
func (c *fontCache) font(size int) *ttf.Font {
	if size < 1 {
		size = 1
	}
	if f, exists := c.fonts[size]; exists {
		c.moveToEnd(size)
		return f
	}

	f, err := ttf.OpenFont(c.path, size)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to open font",
			"path", c.path, "size", size, "error", err)
		return nil
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.fonts[size] = f
	c.order = append(c.order, size)
	return f
}

// TextWidth measures text through SDL_ttf, falling back to a width
// heuristic when the face is unavailable.
func (c *fontCache) TextWidth(text string, size float64) float64 {
	f := c.font(int(math.Round(size)))
	if f == nil {
		return 0.6 * size * float64(len([]rune(text)))
	}
	w, _, err := f.SizeUTF8(text)
	if err != nil {
		return 0.6 * size * float64(len([]rune(text)))
	}
	return float64(w)
}

func (c *fontCache) moveToEnd(size int) {
	for i, s := range c.order {
		if s == size {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, size)
			return
		}
	}
}

func (c *fontCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if f, exists := c.fonts[oldest]; exists {
		f.Close()
		delete(c.fonts, oldest)
	}
}

func (c *fontCache) destroy() {
	for _, f := range c.fonts {
		f.Close()
	}
	c.fonts = make(map[int]*ttf.Font)
	c.order = c.order[:0]
}
