package tarallo

// Item is one entry in the bar. Items are immutable once loaded; to change
// them, hand a new slice to Bar.LoadItems. Slice order defines the
// index-to-position mapping.
type Item struct {
	// ID names the item for hosts (page routing, analytics). The engine
	// never interprets it.
	ID string

	// Title is the label text, already localized by the time it reaches
	// the bar.
	Title string

	// Icon is an opaque handle the renderer resolves to something
	// drawable. The sdlui binding accepts a file path or http(s) URL
	// string, raw image bytes, or a ready *sdl.Texture. nil marks a
	// text-only item, which is drawn as a centered auto-fitted label.
	Icon any
}

// HasIcon reports whether the item renders an icon.
func (it Item) HasIcon() bool { return it.Icon != nil }
