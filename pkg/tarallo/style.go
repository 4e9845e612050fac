package tarallo

// StyleGeometry is the arrangement a PresentationStyle computes for one item
// at one selection fraction. All offsets position an element's center
// relative to the item cell's center; negative Y is up.
type StyleGeometry struct {
	IconOffsetX float64
	IconOffsetY float64
	IconColor   Color

	LabelShown   bool
	LabelOffsetX float64
	LabelOffsetY float64
	LabelSize    float64
	LabelColor   Color

	// ContentWidth is the combined icon+label footprint, which the
	// side-by-side style grows as the label unfolds.
	ContentWidth float64
}

// PresentationStyle computes how an item's icon and label are arranged for a
// given selection fraction. Implementations are stateless values; the two
// shipped styles are StyleStacked and StyleSideBySide. labelWidth is the
// label's measured width at the configured text size.
type PresentationStyle interface {
	// Name reports the identifier used in menu definitions.
	Name() string
	ItemGeometry(fraction float64, cfg Config, labelWidth float64) StyleGeometry
}

// StyleStacked draws the label under the icon. As the fraction rises the
// icon lifts, the label fades in beneath it and grows to full size.
var StyleStacked PresentationStyle = stackedStyle{}

// StyleSideBySide keeps the icon vertically centered and unfolds the label
// to its right, widening the content as the fraction rises.
var StyleSideBySide PresentationStyle = sideBySideStyle{}

type stackedStyle struct{}

func (stackedStyle) Name() string { return "stacked" }

func (stackedStyle) ItemGeometry(fraction float64, cfg Config, labelWidth float64) StyleGeometry {
	rise := cfg.TextSize / 1.4
	if !cfg.AlwaysShowText {
		rise *= fraction
	}
	g := StyleGeometry{
		IconOffsetY:  -rise,
		IconColor:    BlendColor(fraction, cfg.InactiveTint, cfg.ActiveTint),
		LabelOffsetY: rise,
		ContentWidth: cfg.IconSize,
	}
	if cfg.AlwaysShowText {
		g.LabelShown = true
		g.LabelSize = cfg.TextSize * (0.85 + 0.15*fraction)
		g.LabelColor = BlendColor(fraction, cfg.InactiveTint, cfg.ActiveTint)
	} else {
		g.LabelShown = fraction > 0.2
		g.LabelSize = cfg.TextSize * fraction
		g.LabelColor = BlendColor(fraction, Transparent, cfg.ActiveTint)
	}
	return g
}

type sideBySideStyle struct{}

func (sideBySideStyle) Name() string { return "side_by_side" }

func (sideBySideStyle) ItemGeometry(fraction float64, cfg Config, labelWidth float64) StyleGeometry {
	width := cfg.IconSize + (cfg.ItemPadding+labelWidth)*fraction
	g := StyleGeometry{
		IconOffsetX:  (cfg.IconSize - width) / 2,
		IconColor:    BlendColor(fraction, cfg.InactiveTint, cfg.ActiveTint),
		LabelOffsetX: cfg.IconSize + cfg.ItemPadding - width/2 + labelWidth/2,
		LabelSize:    cfg.TextSize,
		ContentWidth: width,
	}
	if cfg.AlwaysShowText {
		g.LabelShown = true
		// Permanent labels dim while folded instead of disappearing.
		c := BlendColor(fraction, cfg.InactiveTint, cfg.ActiveTint)
		g.LabelColor = c.WithAlpha(uint8(float64(c.A) * (0.3 + 0.7*fraction)))
	} else {
		g.LabelShown = fraction > 0.05
		g.LabelColor = BlendColor(fraction, Transparent, cfg.ActiveTint)
	}
	return g
}
