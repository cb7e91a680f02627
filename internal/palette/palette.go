// Package palette provides tonal palette generation. A Palette derives an
// 11-shade lightness ramp from a base hue and saturation, optionally shifting
// hue across the ramp.
package palette

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
)

// Stops are the ramp positions produced by Colors, lightest first. Consumers
// index swatches by position in this order.
var Stops = [Size]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// Size is the number of shades in a ramp.
const Size = 11

// Palette holds the three scalar inputs of a tonal ramp. H is in [0,1), S in
// [0,1]; HueShift is the total hue rotation (in turns) from the darkest to the
// lightest shade.
type Palette struct {
	H, S     float32
	HueShift float32
}

// Swatches holds the ramp as opaque 8-bit colors.
type Swatches [Size]color.RGBA

// New returns a palette for the given hue and saturation with no hue shift.
func New(h, s float32) Palette {
	return Palette{H: colorval.WrapUnit(h), S: clamp(s, 0, 1)}
}

// From returns a palette taking its hue and saturation from c.
func From(c colorval.Hsla) Palette {
	return New(c.H, c.S)
}

// WithHueShift returns a copy of the palette with the given hue shift.
func (p Palette) WithHueShift(amount float32) Palette {
	p.HueShift = amount
	return p
}

// At returns the shade at normalized lightness l. l is clamped to [0,1];
// hue is perturbed by (l-0.5)*HueShift and wrapped into [0,1).
func (p Palette) At(l float32) colorval.Hsla {
	l = clamp(l, 0, 1)
	h := colorval.WrapUnit(p.H + (l-0.5)*p.HueShift)
	return colorval.Hsla{H: h, S: p.S, L: l, A: 1}
}

// AtDarkness returns the shade at a darkness stop in [0,1000], e.g. 500 for
// the middle of the ramp. Larger stops are darker; stops above 1000 are
// treated as 1000.
func (p Palette) AtDarkness(stop int) colorval.Hsla {
	return p.At(Darkness(stop))
}

// Darkness converts a stop in [0,1000] into the normalized lightness used by
// At.
func Darkness(stop int) float32 {
	if stop > 1000 {
		stop = 1000
	}
	if stop < 0 {
		stop = 0
	}
	return float32(1000-stop) / 1000
}

// Colors returns the fixed ramp in Stops order, ascending darkness.
func (p Palette) Colors() [Size]colorval.Hsla {
	var out [Size]colorval.Hsla
	for i, stop := range Stops {
		out[i] = p.AtDarkness(stop)
	}
	return out
}

// Swatches converts the ramp to opaque RGBA colors for display.
func (p Palette) Swatches() Swatches {
	var out Swatches
	for i, c := range p.Colors() {
		out[i] = c.RGBA()
	}
	return out
}

func clamp(v, lo, hi float32) float32 {
	if math32.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
