// Package menu loads bar definitions from TOML: the visual configuration
// plus the ordered item list, with optional localization of item titles
// through go-i18n. A definition file keeps the bar's look out of code the
// same way CFW themes keep colors out of binaries.
//
// A minimal definition:
//
//	[bar]
//	style = "side_by_side"
//	background = "#1A1A1A"
//	indicator_color = "#2D6CDF"
//	corners = ["top_left", "top_right"]
//
//	[[item]]
//	id = "home"
//	title = "tab_home"
//	icon = "icons/home.svg"
//
// Unset bar fields keep the engine defaults. Item titles are looked up as
// message IDs when a localizer is supplied; titles with no message fall
// back to their literal text.
package menu

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo"
	"github.com/BrandonKowalski/tarallo/pkg/tarallo/internal"
)

// Options adjust how a definition is interpreted.
type Options struct {
	// Localizer resolves item titles as message IDs. nil leaves titles
	// as-is.
	Localizer *i18n.Localizer

	// Base is the configuration the definition overrides. The zero value
	// means tarallo.DefaultConfig().
	Base *tarallo.Config
}

type definition struct {
	Bar   barSection    `toml:"bar"`
	Items []itemSection `toml:"item"`
}

type barSection struct {
	Style          *string  `toml:"style"`
	AlwaysShowText *bool    `toml:"always_show_text"`

	Background   *string  `toml:"background"`
	CornerRadius *float64 `toml:"corner_radius"`
	Corners      []string `toml:"corners"`

	IndicatorColor  *string  `toml:"indicator_color"`
	IndicatorRadius *float64 `toml:"indicator_radius"`
	IndicatorMargin *float64 `toml:"indicator_margin"`

	InactiveTint *string `toml:"inactive_tint"`
	ActiveTint   *string `toml:"active_tint"`

	TextSize    *float64 `toml:"text_size"`
	IconSize    *float64 `toml:"icon_size"`
	SideMargin  *float64 `toml:"side_margin"`
	ItemPadding *float64 `toml:"item_padding"`

	SnapDurationMS *int     `toml:"snap_duration_ms"`
	SnapOvershoot  *float64 `toml:"snap_overshoot"`
	DragSlop       *float64 `toml:"drag_slop"`
	MinTextSize    *float64 `toml:"min_text_size"`
}

type itemSection struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Icon  string `toml:"icon"`
}

// Load reads and parses a definition file.
func Load(path string, opts Options) (tarallo.Config, []tarallo.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tarallo.Config{}, nil, fmt.Errorf("menu: read %s: %w", path, err)
	}
	cfg, items, err := Parse(data, opts)
	if err != nil {
		return cfg, items, fmt.Errorf("menu: parse %s: %w", path, err)
	}
	// A partial Options.Base can leave Style nil for NewBar to default.
	style := "default"
	if cfg.Style != nil {
		style = cfg.Style.Name()
	}
	internal.GetInternalLogger().Debug("Loaded menu definition",
		"path", path, "items", len(items), "style", style)
	return cfg, items, nil
}

// Parse decodes a TOML definition into a configuration and item list.
func Parse(data []byte, opts Options) (tarallo.Config, []tarallo.Item, error) {
	cfg := tarallo.DefaultConfig()
	if opts.Base != nil {
		cfg = *opts.Base
	}

	var def definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return cfg, nil, fmt.Errorf("menu: decode: %w", err)
	}

	if err := def.Bar.apply(&cfg); err != nil {
		return cfg, nil, err
	}
	items, err := buildItems(def.Items, opts.Localizer)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, items, nil
}

// NewBundle returns an i18n bundle preloaded with a TOML unmarshaler, so
// message files can use the same format as the definition itself.
func NewBundle(defaultLanguage language.Tag) *i18n.Bundle {
	b := i18n.NewBundle(defaultLanguage)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return b
}

func (s barSection) apply(cfg *tarallo.Config) error {
	if s.Style != nil {
		style, err := styleByName(*s.Style)
		if err != nil {
			return err
		}
		cfg.Style = style
	}
	if s.AlwaysShowText != nil {
		cfg.AlwaysShowText = *s.AlwaysShowText
	}

	if err := setColor(&cfg.Background, s.Background, "background"); err != nil {
		return err
	}
	if err := setColor(&cfg.IndicatorColor, s.IndicatorColor, "indicator_color"); err != nil {
		return err
	}
	if err := setColor(&cfg.InactiveTint, s.InactiveTint, "inactive_tint"); err != nil {
		return err
	}
	if err := setColor(&cfg.ActiveTint, s.ActiveTint, "active_tint"); err != nil {
		return err
	}

	if s.Corners != nil {
		mask, err := cornerMask(s.Corners)
		if err != nil {
			return err
		}
		cfg.CornerMask = mask
	}

	setFloat(&cfg.CornerRadius, s.CornerRadius)
	setFloat(&cfg.IndicatorRadius, s.IndicatorRadius)
	setFloat(&cfg.IndicatorMargin, s.IndicatorMargin)
	setFloat(&cfg.TextSize, s.TextSize)
	setFloat(&cfg.IconSize, s.IconSize)
	setFloat(&cfg.SideMargin, s.SideMargin)
	setFloat(&cfg.ItemPadding, s.ItemPadding)
	setFloat(&cfg.SnapOvershoot, s.SnapOvershoot)
	setFloat(&cfg.DragSlop, s.DragSlop)
	setFloat(&cfg.MinTextSize, s.MinTextSize)

	if s.SnapDurationMS != nil {
		if *s.SnapDurationMS < 0 {
			return fmt.Errorf("menu: snap_duration_ms %d is negative", *s.SnapDurationMS)
		}
		cfg.SnapDuration = time.Duration(*s.SnapDurationMS) * time.Millisecond
	}
	return nil
}

func styleByName(name string) (tarallo.PresentationStyle, error) {
	switch name {
	case tarallo.StyleStacked.Name():
		return tarallo.StyleStacked, nil
	case tarallo.StyleSideBySide.Name():
		return tarallo.StyleSideBySide, nil
	default:
		return nil, fmt.Errorf("menu: unknown style %q", name)
	}
}

func cornerMask(names []string) (tarallo.Corner, error) {
	var mask tarallo.Corner
	for _, name := range names {
		switch name {
		case "top_left":
			mask |= tarallo.CornerTopLeft
		case "top_right":
			mask |= tarallo.CornerTopRight
		case "bottom_right":
			mask |= tarallo.CornerBottomRight
		case "bottom_left":
			mask |= tarallo.CornerBottomLeft
		case "top":
			mask |= tarallo.CornersTop
		case "all":
			mask |= tarallo.CornersAll
		case "none":
			// explicit square corners
		default:
			return 0, fmt.Errorf("menu: unknown corner %q", name)
		}
	}
	return mask, nil
}

func setColor(dst *tarallo.Color, raw *string, field string) error {
	if raw == nil {
		return nil
	}
	c, err := tarallo.ParseColor(*raw)
	if err != nil {
		return fmt.Errorf("menu: %s: %w", field, err)
	}
	*dst = c
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func buildItems(sections []itemSection, localizer *i18n.Localizer) ([]tarallo.Item, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("menu: no items defined")
	}
	seen := make(map[string]struct{}, len(sections))
	items := make([]tarallo.Item, 0, len(sections))
	for i, s := range sections {
		if s.Title == "" {
			return nil, fmt.Errorf("menu: item %d has no title", i)
		}
		id := s.ID
		if id == "" {
			id = s.Title
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("menu: duplicate item id %q", id)
		}
		seen[id] = struct{}{}

		item := tarallo.Item{ID: id, Title: localizedTitle(localizer, s.Title)}
		if s.Icon != "" {
			item.Icon = s.Icon
		}
		items = append(items, item)
	}
	return items, nil
}

func localizedTitle(localizer *i18n.Localizer, title string) string {
	if localizer == nil {
		return title
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: title})
	if err != nil || msg == "" {
		return title
	}
	return msg
}
