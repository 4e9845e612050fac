package tarallo_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo"
)

// Example drives the bar headlessly: load items, listen for selections, and
// pump the frame clock until the snap settles.
func Example() {
	bar := tarallo.NewBar(tarallo.DefaultConfig(), nil, nil)

	unsubscribe := bar.Subscribe(func(ev tarallo.SelectionEvent) {
		fmt.Printf("%s -> %d\n", ev.Kind, ev.Index)
	})
	defer unsubscribe()

	bar.LoadItems([]tarallo.Item{
		{ID: "home", Title: "Home"},
		{ID: "search", Title: "Search"},
		{ID: "library", Title: "Library"},
	})
	bar.SetSize(320, 64)

	// A tap lands on the rightmost item.
	bar.PointerDown(280, 32)
	bar.PointerUp(280, 32)

	// Pump a 60fps clock until the indicator settles.
	now := time.Unix(0, 0)
	for bar.Animating() {
		bar.Tick(now)
		now = now.Add(16 * time.Millisecond)
	}

	x, _ := bar.Indicator()
	layout, _ := bar.Layout()
	fmt.Printf("active=%d indicator=%.1f center=%.1f\n",
		bar.ActiveIndex(), x, layout.CenterX(bar.ActiveIndex()))

	// Output:
	// selected -> 2
	// active=2 indicator=260.0 center=260.0
}

// Example_drag shows the indicator pinned to the finger. It never leaves the
// track, so a release far off the end still resolves to the last item.
func Example_drag() {
	cfg := tarallo.DefaultConfig()
	cfg.SideMargin = 0
	bar := tarallo.NewBar(cfg, nil, nil)
	bar.Subscribe(func(ev tarallo.SelectionEvent) {
		fmt.Printf("%s item %d\n", ev.Kind, ev.Index)
	})
	bar.LoadItems([]tarallo.Item{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
		{ID: "c", Title: "Gamma"},
	})
	bar.SetSize(300, 64)

	bar.PointerDown(50, 32)
	bar.PointerMove(600, 32)
	bar.PointerUp(600, 32)
	fmt.Println("phase:", bar.Phase())

	// Output:
	// selected item 2
	// phase: snapping
}
