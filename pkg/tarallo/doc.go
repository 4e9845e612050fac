// Package tarallo implements the interaction engine for an animated bottom
// tab bar: a horizontal row of items with a sliding pill indicator that
// tracks the finger during drags and snaps onto the chosen item with an
// overshoot animation.
//
// The package is deliberately renderer-free. It owns selection state,
// gesture classification, layout math and the per-frame visual computation,
// and talks to the outside world through three narrow seams:
//
//   - a TextMeasurer the host supplies for label widths,
//   - a repaint callback invoked whenever visible state changes,
//   - a Tick method the host drives from its frame clock.
//
// The sdlui subpackage binds a Bar to SDL2 for NextUI and Cannoli devices;
// the menu subpackage loads bar definitions from TOML. Hosts with their own
// rendering stack can use Bar directly: call Visuals once per frame and
// paint what it returns.
package tarallo
