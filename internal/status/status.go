// Package status holds a transient status message that clears itself after a
// fixed delay. Each new message supersedes the pending clear of the previous
// one.
package status

import (
	"sync"
	"time"
)

// Status is a self-clearing message slot. It is safe for concurrent use; the
// delayed clear runs on a timer goroutine.
type Status struct {
	fade      time.Duration
	afterFunc func(time.Duration, func())
	onChange  func()

	mu         sync.Mutex
	message    string
	generation uint64
}

// New returns an empty status whose messages clear after fade. A
// non-positive fade keeps messages until replaced.
func New(fade time.Duration) *Status {
	return &Status{
		fade: fade,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// WithAfterFunc replaces the timer used to schedule clears.
func (s *Status) WithAfterFunc(fn func(time.Duration, func())) *Status {
	s.afterFunc = fn
	return s
}

// OnChange registers fn to be called after the message changes, including
// from the timer goroutine.
func (s *Status) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Show replaces the message and schedules it to be cleared.
func (s *Status) Show(msg string) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.message = msg
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	if s.fade > 0 {
		s.afterFunc(s.fade, func() { s.clearIf(gen) })
	}
}

// Clear removes the message immediately and cancels any pending clear.
func (s *Status) Clear() {
	s.mu.Lock()
	s.generation++
	s.message = ""
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// clearIf clears the message only if no newer message was shown since
// generation gen.
func (s *Status) clearIf(gen uint64) {
	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return
	}
	s.message = ""
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Message returns the current message, empty if none.
func (s *Status) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Generation returns the number of messages shown or cleared so far.
func (s *Status) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
