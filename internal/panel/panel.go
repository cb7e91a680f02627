// Package panel composes the color input panel: a preview, hue, saturation
// and lightness sliders over one shared selection, the tonal ramp derived
// from the selection, and numeric readouts.
package panel

import (
	"fmt"
	"image/color"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
	"github.com/iOliverNguyen/rustapps/internal/geom"
	"github.com/iOliverNguyen/rustapps/internal/gradient"
	"github.com/iOliverNguyen/rustapps/internal/library"
	"github.com/iOliverNguyen/rustapps/internal/palette"
	"github.com/iOliverNguyen/rustapps/internal/selection"
	"github.com/iOliverNguyen/rustapps/internal/slider"
)

// AccentStop is the ramp stop used for accent text and decorations.
const AccentStop = 400

const (
	previewHeight = 48.0
	accentHeight  = 4.0
)

// Surface is everything the panel paints on.
type Surface interface {
	slider.Surface
	FillRect(dst geom.Box, c color.RGBA)
}

// Options holds the panel geometry in layout units and the palette's hue
// shift.
type Options struct {
	Slider       slider.Options
	TrackWidth   float64
	TrackHeight  float64
	Gap          float64
	SwatchHeight float64
	HueShift     float32
}

// DefaultOptions returns the geometry used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Slider:       slider.Options{Padding: 4, ThumbRadius: 10},
		TrackWidth:   300,
		TrackHeight:  12,
		Gap:          20,
		SwatchHeight: 32,
	}
}

// Readout is the numeric form of the current color.
type Readout struct {
	Hex     string
	H, S, L int
}

func (r Readout) String() string {
	return fmt.Sprintf("%s  hsl(%d, %d%%, %d%%)", r.Hex, r.H, r.S, r.L)
}

// Panel owns the current selection and everything derived from it.
type Panel struct {
	sel     *selection.Selection
	sliders [3]*slider.Slider
	opts    Options
	lib     *library.Library

	// Derived state, recomputed on every selection write.
	palette  palette.Palette
	swatches palette.Swatches
	readout  Readout
	match    int

	captured *slider.Slider // slider holding an in-progress drag

	bounds      geom.Box
	preview     geom.Box
	swatchBoxes [palette.Size]geom.Box
	accentBox   geom.Box

	unsubscribe func()
}

// New returns a panel editing c. lib may be nil.
func New(c colorval.Color, opts Options, lib *library.Library) *Panel {
	p := &Panel{
		sel:  selection.New(c),
		opts: opts,
		lib:  lib,
	}
	for i, scale := range []gradient.Scale{gradient.Hue, gradient.Saturation, gradient.Lightness} {
		p.sliders[i] = slider.New(scale, p.sel, opts.Slider)
	}
	p.unsubscribe = p.sel.Subscribe(func(_, next colorval.Color) { p.recompute(next) })
	p.recompute(p.sel.Value())
	return p
}

// Close detaches the panel and its sliders from the selection.
func (p *Panel) Close() {
	for _, s := range p.sliders {
		s.Close()
	}
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *Panel) recompute(c colorval.Color) {
	p.palette = palette.From(c.Hsla()).WithHueShift(p.opts.HueShift)
	p.swatches = p.palette.Swatches()

	h, s, l := c.HSL()
	p.readout = Readout{Hex: c.ToRGB().String(), H: h, S: s, L: l}
	p.match, _ = p.lib.Position(c)
}

// Selection returns the shared selection the sliders edit.
func (p *Panel) Selection() *selection.Selection { return p.sel }

// Color returns the current color.
func (p *Panel) Color() colorval.Color { return p.sel.Value() }

// SetColor replaces the current color.
func (p *Panel) SetColor(c colorval.Color) { p.sel.Set(c) }

// Slider returns the slider for the given scale.
func (p *Panel) Slider(scale gradient.Scale) *slider.Slider { return p.sliders[scale] }

// Palette returns the tonal palette of the current color.
func (p *Panel) Palette() palette.Palette { return p.palette }

// Swatches returns the current tonal ramp.
func (p *Panel) Swatches() palette.Swatches { return p.swatches }

// Accent returns the accent shade of the current ramp.
func (p *Panel) Accent() colorval.Hsla { return p.palette.AtDarkness(AccentStop) }

// Readout returns the numeric form of the current color.
func (p *Panel) Readout() Readout { return p.readout }

// Library returns the panel's library, possibly nil.
func (p *Panel) Library() *library.Library { return p.lib }

// SetLibrary replaces the library and refreshes the current match.
func (p *Panel) SetLibrary(lib *library.Library) {
	p.lib = lib
	p.match, _ = lib.Position(p.sel.Value())
}

// Match returns the library item equal to the current color, if any.
func (p *Panel) Match() (library.Item, bool) {
	if p.match < 0 || p.match >= p.lib.Len() {
		return library.Item{}, false
	}
	return p.lib.Items[p.match], true
}

// MatchIndex returns the library index equal to the current color, or -1.
func (p *Panel) MatchIndex() int { return p.match }

// Size returns the panel's extent in layout units.
func (p *Panel) Size() (w, h float64) {
	o := p.opts
	h = previewHeight + o.Gap +
		3*(o.TrackHeight+o.Gap) +
		o.SwatchHeight + o.Gap/2 +
		accentHeight
	return o.TrackWidth, h
}

// Layout positions the panel with its top-left corner at origin and lays out
// every slider. scaleFactor converts layout units to physical pixels.
func (p *Panel) Layout(origin geom.Point, scaleFactor float64) {
	o := p.opts
	x, y := origin.X, origin.Y

	p.preview = geom.MakeBox(x, y, o.TrackWidth, previewHeight)
	y += previewHeight + o.Gap

	for _, s := range p.sliders {
		s.Layout(geom.MakeBox(x, y, o.TrackWidth, o.TrackHeight), scaleFactor)
		y += o.TrackHeight + o.Gap
	}

	w := o.TrackWidth / palette.Size
	for i := range p.swatchBoxes {
		p.swatchBoxes[i] = geom.MakeBox(x+float64(i)*w, y, w, o.SwatchHeight)
	}
	y += o.SwatchHeight + o.Gap/2

	p.accentBox = geom.MakeBox(x, y, o.TrackWidth, accentHeight)
	y += accentHeight

	p.bounds = geom.MakeBox(origin.X, origin.Y, o.TrackWidth, y-origin.Y)
}

// Bounds returns the area covered by the last layout.
func (p *Panel) Bounds() geom.Box { return p.bounds }

// HandlePointer routes a pointer event to the sliders and reports whether the
// selection was written. While a slider is dragging it receives every event
// exclusively, so a drag that crosses a sibling slider does not capture it.
func (p *Panel) HandlePointer(ev slider.PointerEvent) bool {
	if p.captured != nil {
		changed := p.captured.HandlePointer(ev)
		if p.captured.State() == slider.Idle {
			p.captured = nil
		}
		return changed
	}

	for _, s := range p.sliders {
		changed := s.HandlePointer(ev)
		if s.State() == slider.Dragging {
			p.captured = s
			return changed
		}
	}
	return false
}

// Captured returns the slider holding the current drag, or nil.
func (p *Panel) Captured() *slider.Slider { return p.captured }

// Paint draws the preview, the sliders, the ramp and the accent bar.
func (p *Panel) Paint(surface Surface) {
	surface.FillRect(p.preview, p.sel.Value().RGBA())
	for _, s := range p.sliders {
		s.Paint(surface)
	}
	for i, c := range p.swatches {
		surface.FillRect(p.swatchBoxes[i], c)
	}
	surface.FillRect(p.accentBox, p.Accent().RGBA())
}
