package tarallo

// Pager shows one page of content per bar item. Bind one with AttachPager
// and the bar drives it; relay swipes back with NotifyPageChanged and the
// bar follows without echoing.
type Pager interface {
	// ShowPage brings the page for an item index on screen.
	ShowPage(index int)
}

// PagerFunc adapts a function to the Pager interface.
type PagerFunc func(index int)

func (f PagerFunc) ShowPage(index int) { f(index) }

// AttachPager binds a pager: every selection change calls its ShowPage with
// the new index. Reselections do not, since the page is already showing.
// Pass nil to detach.
func (b *Bar) AttachPager(p Pager) {
	b.pager = p
}

// NotifyPageChanged aligns the bar with a page change that originated in
// the pager itself, typically a content swipe. The bar snaps and delivers
// selection events as usual but does not call ShowPage back. Indexes
// outside the item range return an IndexOutOfRangeError; the current page's
// index is a no-op.
func (b *Bar) NotifyPageChanged(index int) error {
	if index < 0 || index >= len(b.items) {
		return &IndexOutOfRangeError{Index: index, Count: len(b.items)}
	}
	if index == b.active {
		return nil
	}
	b.pagerQuiet = true
	defer func() { b.pagerQuiet = false }()
	b.snapTo(index)
	return nil
}
