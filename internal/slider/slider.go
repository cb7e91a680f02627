// Package slider implements a gradient slider bound to one channel of a shared
// color selection. A slider caches its gradient strip, regenerating it only
// when its size changes or when the selection changes in a channel the strip
// depends on, and turns pointer input into channel writes.
package slider

import (
	"image/color"
	"io"
	"log"
	"math"
	"os"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
	"github.com/iOliverNguyen/rustapps/internal/geom"
	"github.com/iOliverNguyen/rustapps/internal/gradient"
	"github.com/iOliverNguyen/rustapps/internal/selection"
)

var debugLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("UICOLORS_DEBUG_SLIDER") == "1" {
		debugLogger = log.New(os.Stderr, "[slider] ", log.Ltime|log.Lmsgprefix)
	}
}

// Surface is where sliders paint. Paint receives the slider's cached image
// for the duration of the call only; dst is in layout coordinates and the
// surface scales the image into it.
type Surface interface {
	Paint(img *gradient.Image, dst geom.Box)
	FillCircle(center geom.Point, radius float64, c color.RGBA)
}

// State is the drag state of a slider.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Options holds the slider's geometry in layout units.
type Options struct {
	Padding     float64 // horizontal margin inside the track, also added to the hit region
	ThumbRadius float64
}

// Slider is a gradient track with a thumb for one channel of a selection.
type Slider struct {
	Scale gradient.Scale

	sel  *selection.Selection
	opts Options

	state       State
	bounds      geom.Box
	hasBounds   bool
	scaleFactor float64

	image         *gradient.Image // nil once invalidated
	regenerations int

	unsubscribe func()
}

// New returns a slider editing the given channel of sel. The slider observes
// sel until Close is called.
func New(scale gradient.Scale, sel *selection.Selection, opts Options) *Slider {
	s := &Slider{
		Scale:       scale,
		sel:         sel,
		opts:        opts,
		scaleFactor: 1,
	}
	s.unsubscribe = sel.Subscribe(s.onChange)
	return s
}

// Close stops observing the selection.
func (s *Slider) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// onChange drops the cached image if the new color changed a channel the
// strip depends on.
func (s *Slider) onChange(_, next colorval.Color) {
	if s.image == nil {
		return
	}
	if s.Scale.DependsOn(s.image.Source, next.Hsla()) {
		debugLogger.Printf("%s: invalidated by %s", s.Scale, next)
		s.image = nil
	}
}

// State returns the current drag state.
func (s *Slider) State() State { return s.state }

// Bounds returns the last layout bounds and whether a layout pass has
// happened.
func (s *Slider) Bounds() (geom.Box, bool) { return s.bounds, s.hasBounds }

// Image returns the cached strip, or nil if none is valid.
func (s *Slider) Image() *gradient.Image { return s.image }

// Regenerations returns how many strips the slider has generated.
func (s *Slider) Regenerations() int { return s.regenerations }

// Layout records the slider's bounds and brings the cached strip up to date.
// scaleFactor converts layout units to physical pixels.
func (s *Slider) Layout(bounds geom.Box, scaleFactor float64) {
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	s.bounds, s.hasBounds, s.scaleFactor = bounds, true, scaleFactor
	s.refresh()
}

func (s *Slider) refresh() {
	w, h, pad := s.pixelSize()
	ref := s.sel.Value().Hsla()
	if s.image.Equivalent(w, h, pad, ref) {
		return
	}
	s.image = gradient.GenImage(s.Scale, w, h, pad, ref)
	s.regenerations++
	debugLogger.Printf("%s: generated %dx%d (padding %d) for %s", s.Scale, w, h, pad, ref)
}

func (s *Slider) pixelSize() (w, h, pad int) {
	px := func(v float64) int { return int(math.Round(v * s.scaleFactor)) }
	return px(s.bounds.W), px(s.bounds.H), px(s.opts.Padding)
}

// HitRegion returns the area that accepts pointer-downs: the track inflated
// horizontally by the padding and vertically to the thumb's radius.
func (s *Slider) HitRegion() geom.Box {
	half := s.bounds.H / 2
	dy := math.Max(half, s.opts.ThumbRadius) - half
	return s.bounds.Inflate(s.opts.Padding, dy)
}

// ThumbCenter returns where the thumb is drawn for the current color.
func (s *Slider) ThumbCenter() geom.Point {
	v := float64(s.Scale.Value(s.sel.Value()))
	span := math.Max(s.bounds.W-2*s.opts.Padding, 0)
	return geom.MakePoint(s.bounds.X+s.opts.Padding+v*span, s.bounds.Y+s.bounds.H/2)
}

// ValueAt maps a pointer x coordinate to a normalized channel value. It
// returns false if the track is too narrow to have a usable span.
func (s *Slider) ValueAt(x float64) (float32, bool) {
	span := s.bounds.W - 2*s.opts.Padding
	if span <= 0 {
		return 0, false
	}
	v := (x - s.bounds.X - s.opts.Padding) / span
	return float32(math.Max(0, math.Min(v, 1))), true
}

// HandlePointer advances the drag state machine and reports whether the
// selection was written. Events before the first layout are ignored. A move
// with the button held re-enters Dragging even if the down was missed, as
// long as it lands in the hit region; a move with the button released ends a
// drag.
func (s *Slider) HandlePointer(ev PointerEvent) bool {
	if !s.hasBounds {
		return false
	}

	switch ev.Kind {
	case PointerDown:
		if ev.Button != ButtonPrimary || !s.HitRegion().Contains(ev.Pos) {
			return false
		}
		s.setState(Dragging)
		return s.apply(ev.Pos)

	case PointerMove:
		if !ev.Pressed {
			s.setState(Idle)
			return false
		}
		if s.state == Idle {
			if !s.HitRegion().Contains(ev.Pos) {
				return false
			}
			debugLogger.Printf("%s: resynchronized drag from held button", s.Scale)
			s.setState(Dragging)
		}
		return s.apply(ev.Pos)

	case PointerUp:
		if ev.Button == ButtonPrimary {
			s.setState(Idle)
		}
	}
	return false
}

func (s *Slider) setState(state State) {
	if s.state != state {
		debugLogger.Printf("%s: %s -> %s", s.Scale, s.state, state)
		s.state = state
	}
}

func (s *Slider) apply(pos geom.Point) bool {
	v, ok := s.ValueAt(pos.X)
	if !ok {
		return false
	}
	s.sel.Update(func(c colorval.Color) colorval.Color {
		return s.Scale.Set(c, v)
	})
	return true
}

// Paint draws the strip and the thumb. The strip is regenerated first if it
// was invalidated since the last layout. Nothing is drawn before the first
// layout.
func (s *Slider) Paint(surface Surface) {
	if !s.hasBounds {
		return
	}
	if s.image == nil {
		s.refresh()
	}
	if !s.image.Empty() {
		surface.Paint(s.image, s.bounds)
	}

	center := s.ThumbCenter()
	surface.FillCircle(center, s.opts.ThumbRadius, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	surface.FillCircle(center, s.opts.ThumbRadius*0.75, s.sel.Value().RGBA())
}
