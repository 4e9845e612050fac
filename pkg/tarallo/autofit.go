package tarallo

// TextMeasurer reports rendered label widths. The SDL binding backs it with
// SDL_ttf; headless hosts and tests can use a MeasureFunc.
type TextMeasurer interface {
	TextWidth(text string, size float64) float64
}

// MeasureFunc adapts a plain function to the TextMeasurer interface.
type MeasureFunc func(text string, size float64) float64

func (f MeasureFunc) TextWidth(text string, size float64) float64 {
	return f(text, size)
}

// DefaultMinTextSize is the floor FitTextSize shrinks to before giving up.
const DefaultMinTextSize = 8.0

// approxTextWidth estimates label widths when no measurer is supplied. The
// factor suits typical UI faces at small sizes; it only has to be plausible
// enough for auto-fit and the side-by-side unfold width.
func approxTextWidth(text string, size float64) float64 {
	return 0.6 * size * float64(len([]rune(text)))
}

// FitTextSize walks a font size down from preferred, one unit at a time,
// until measure reports that text fits in maxWidth. It returns the first
// fitting size, or min when even that does not fit.
func FitTextSize(text string, maxWidth, preferred, min float64, measure TextMeasurer) float64 {
	size := preferred
	for size > min && measure.TextWidth(text, size) > maxWidth {
		size--
	}
	return size
}
