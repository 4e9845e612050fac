package tarallo

import (
	"errors"
	"fmt"
)

// ErrDegenerateLayout indicates a bar with no items or no usable width.
// Bar methods guard on this internally and become no-ops; the error is
// surfaced only where callers build a Layout themselves.
var ErrDegenerateLayout = errors.New("tarallo: degenerate layout")

// IndexOutOfRangeError reports a programmatic selection outside the current
// item range. The bar's state is left untouched when it is returned.
type IndexOutOfRangeError struct {
	Index int // Requested index
	Count int // Number of items loaded
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("tarallo: item index %d out of range [0, %d)", e.Index, e.Count)
}

// IsIndexOutOfRange checks if an error is an IndexOutOfRangeError.
func IsIndexOutOfRange(err error) bool {
	var rangeErr *IndexOutOfRangeError
	return errors.As(err, &rangeErr)
}
