// Package selection holds the current color shared by every widget of a
// color input panel. All writes go through Set, which notifies subscribers
// synchronously before returning.
package selection

import "github.com/iOliverNguyen/rustapps/internal/colorval"

// Observer is called after every Set with the previous and the new value.
type Observer func(prev, next colorval.Color)

// Selection is a single-writer, many-reader color cell. It is not safe for
// concurrent use; it lives on the UI event timeline.
type Selection struct {
	value     colorval.Color
	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Observer
}

// New returns a selection initialized to c.
func New(c colorval.Color) *Selection {
	return &Selection{value: c.Canonical()}
}

// Value returns the current color.
func (s *Selection) Value() colorval.Color { return s.value }

// Set replaces the current color and notifies every subscriber in
// subscription order, even when the value is unchanged.
func (s *Selection) Set(c colorval.Color) {
	prev := s.value
	s.value = c.Canonical()

	// Observers may unsubscribe (or subscribe) while being notified.
	observers := append([]subscription(nil), s.observers...)
	for _, o := range observers {
		o.fn(prev, s.value)
	}
}

// Update applies fn to the current color and stores the result.
func (s *Selection) Update(fn func(colorval.Color) colorval.Color) {
	s.Set(fn(s.value))
}

// Subscribe registers fn and returns a function that removes it.
func (s *Selection) Subscribe(fn Observer) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}
