// Package gradient generates the 1-D color strips drawn behind the hue,
// saturation and lightness sliders.
//
// Strips are anchored to the full image width: the normalized position of a
// column x is x/width, not (x-padding)/(width-2*padding), so the visible
// strip between the paddings does not reach the exact channel extremes. The
// padded margins are filled with the extreme values instead (see Position).
package gradient

import (
	"image"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
)

// Scale identifies the channel a strip varies.
type Scale int

const (
	Hue Scale = iota
	Saturation
	Lightness
)

func (s Scale) String() string {
	switch s {
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Lightness:
		return "lightness"
	default:
		return "unknown"
	}
}

// DependsOn reports whether a strip generated for reference color prev must be
// regenerated for next. The hue strip never depends on the reference color;
// the saturation strip depends on hue and lightness; the lightness strip
// depends on hue and saturation.
func (s Scale) DependsOn(prev, next colorval.Hsla) bool {
	switch s {
	case Saturation:
		return prev.H != next.H || prev.L != next.L
	case Lightness:
		return prev.H != next.H || prev.S != next.S
	default:
		return false
	}
}

// Value returns the channel of c varied by the scale, normalized to [0,1].
func (s Scale) Value(c colorval.Color) float32 {
	h := c.Hsla()
	switch s {
	case Saturation:
		return h.S
	case Lightness:
		return h.L
	default:
		return h.H
	}
}

// Set returns c with the scale's channel replaced by the normalized value v.
func (s Scale) Set(c colorval.Color, v float32) colorval.Color {
	switch s {
	case Saturation:
		return c.WithSaturation(v)
	case Lightness:
		return c.WithLightness(v)
	default:
		return c.WithHue(v)
	}
}

// at returns the strip color at normalized position v for reference color
// ref.
func (s Scale) at(v float32, ref colorval.Hsla) colorval.Hsla {
	switch s {
	case Saturation:
		return colorval.Hsla{H: ref.H, S: v, L: ref.L, A: 1}
	case Lightness:
		return colorval.Hsla{H: ref.H, S: ref.S, L: v, A: 1}
	default:
		return colorval.Hsla{H: v, S: 1, L: 0.5, A: 1}
	}
}

// Position returns the normalized channel value drawn at column x of a strip
// that is width pixels wide with padding pixels of margin on each side.
// Columns in the left margin (x <= padding) map to 0, columns in the right
// margin (x >= width-padding) map to 1, except for the hue scale where both
// margins map to 0.
func Position(s Scale, x, width, padding int) float32 {
	switch {
	case width <= 0:
		return 0
	case x <= padding:
		return 0
	case x >= width-padding:
		if s == Hue {
			return 0
		}
		return 1
	default:
		return float32(x) / float32(width)
	}
}

// Image is an immutable generated strip together with the inputs it was
// generated for. Pix is nil for an empty (zero-sized) strip.
type Image struct {
	Pix     *image.RGBA
	Scale   Scale
	Width   int
	Height  int
	Padding int
	Source  colorval.Hsla
}

// Empty reports whether the image has no pixels.
func (im *Image) Empty() bool {
	return im == nil || im.Pix == nil
}

// Equivalent reports whether im can be reused in place of a strip generated
// for the given dimensions and reference color: dimensions must match and the
// reference color must not have changed in a channel the scale depends on.
func (im *Image) Equivalent(width, height, padding int, ref colorval.Hsla) bool {
	if im == nil {
		return false
	}
	if im.Width != width || im.Height != height || im.Padding != padding {
		return false
	}
	return !im.Scale.DependsOn(im.Source, ref)
}

// GenImage renders a width×height strip for the given scale. Every row is
// identical; pixels are fully opaque. Non-positive dimensions produce an
// empty image.
func GenImage(s Scale, width, height, padding int, ref colorval.Hsla) *Image {
	im := &Image{
		Scale:   s,
		Width:   width,
		Height:  height,
		Padding: padding,
		Source:  ref,
	}
	if width <= 0 || height <= 0 {
		return im
	}

	pix := image.NewRGBA(image.Rect(0, 0, width, height))
	row := pix.Pix[:4*width]
	for x := 0; x < width; x++ {
		c := s.at(Position(s, x, width, padding), ref).RGBA()
		row[4*x+0] = c.R
		row[4*x+1] = c.G
		row[4*x+2] = c.B
		row[4*x+3] = 255
	}
	for y := 1; y < height; y++ {
		copy(pix.Pix[y*pix.Stride:y*pix.Stride+4*width], row)
	}
	im.Pix = pix
	return im
}
