package app

import "github.com/iOliverNguyen/rustapps/internal/library"

// Browser steps through library items in order, wrapping at either end.
type Browser struct {
	lib     *library.Library
	current int // index of the current item, -1 if none
}

// NewBrowser returns a browser over lib with no current item.
func NewBrowser(lib *library.Library) *Browser {
	return &Browser{lib: lib, current: -1}
}

// SetLibrary replaces the library, keeping the position if it is still in
// range.
func (b *Browser) SetLibrary(lib *library.Library) {
	b.lib = lib
	if b.current >= lib.Len() {
		b.current = -1
	}
}

// SetCurrent sets the current index directly; out-of-range values clear it.
func (b *Browser) SetCurrent(index int) {
	if index < 0 || index >= b.lib.Len() {
		b.current = -1
		return
	}
	b.current = index
}

// Current returns the current index, or -1.
func (b *Browser) Current() int { return b.current }

// Iter moves to the next or previous item and returns it. With no current
// item, next starts at the first item and previous at the last.
func (b *Browser) Iter(next bool) (library.Item, bool) {
	n := b.lib.Len()
	if n == 0 {
		b.current = -1
		return library.Item{}, false
	}

	switch {
	case b.current < 0 && next:
		b.current = 0
	case b.current < 0:
		b.current = n - 1
	case next:
		b.current = (b.current + 1) % n
	default:
		b.current = (b.current - 1 + n) % n
	}
	return b.lib.Items[b.current], true
}
