// Package colorval implements the canonical color value edited by the color
// input panel. A Color is either an RGB or an HSL triple, always held in
// canonical range; conversion between the two goes through a floating point
// HSLA intermediate (Hsla) backed by go-colorful.
package colorval

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Format identifies which variant a Color holds.
type Format uint8

const (
	FormatRGB Format = iota // r, g, b in [0,255]
	FormatHSL               // h in [0,360), s and l in [0,100]
)

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	default:
		return "unknown"
	}
}

// Color is a tagged union over an RGB and an HSL triple. The zero value is
// black in RGB. Two colors are equal only if they hold the same variant with
// the same channels; use ToRGB or ToHSL on both sides to compare across
// variants.
type Color struct {
	format  Format
	a, b, c int // r,g,b or h,s,l depending on format
}

// RGB returns a canonical RGB color. Out-of-range channels are clamped.
func RGB(r, g, b int) Color {
	return Color{format: FormatRGB, a: r, b: g, c: b}.Canonical()
}

// HSL returns a canonical HSL color. Hue wraps modulo 360, saturation and
// lightness are clamped to [0,100].
func HSL(h, s, l int) Color {
	return Color{format: FormatHSL, a: h, b: s, c: l}.Canonical()
}

// Format returns the variant held by the color.
func (c Color) Format() Format { return c.format }

// Canonical returns the color with every channel clamped or wrapped into its
// legal range. It is idempotent.
func (c Color) Canonical() Color {
	switch c.format {
	case FormatHSL:
		h := c.a % 360
		if h < 0 {
			h += 360
		}
		return Color{format: FormatHSL, a: h, b: clampInt(c.b, 0, 100), c: clampInt(c.c, 0, 100)}
	default:
		return Color{format: FormatRGB, a: clampInt(c.a, 0, 255), b: clampInt(c.b, 0, 255), c: clampInt(c.c, 0, 255)}
	}
}

// Channels returns the raw channel triple of the held variant: (r, g, b) for
// RGB colors and (h, s, l) for HSL colors.
func (c Color) Channels() (int, int, int) { return c.a, c.b, c.c }

// RGB returns the color's red, green and blue bytes, converting if needed.
func (c Color) RGB() (r, g, b uint8) {
	rgb := c.ToRGB()
	return uint8(rgb.a), uint8(rgb.b), uint8(rgb.c)
}

// HSL returns the color's hue (degrees), saturation and lightness (percent),
// converting if needed.
func (c Color) HSL() (h, s, l int) {
	hsl := c.ToHSL()
	return hsl.a, hsl.b, hsl.c
}

// ToRGB returns the color as an RGB variant. It is a no-op for RGB colors.
func (c Color) ToRGB() Color {
	c = c.Canonical()
	if c.format == FormatRGB {
		return c
	}
	return c.Hsla().ToRGB()
}

// ToHSL returns the color as an HSL variant. It is a no-op for HSL colors.
func (c Color) ToHSL() Color {
	c = c.Canonical()
	if c.format == FormatHSL {
		return c
	}
	return c.Hsla().ToHSL()
}

// Hsla returns the floating point HSLA form of the color, every component in
// [0,1] and alpha fixed at 1.
func (c Color) Hsla() Hsla {
	c = c.Canonical()
	switch c.format {
	case FormatHSL:
		return Hsla{
			H: float32(c.a) / 360,
			S: float32(c.b) / 100,
			L: float32(c.c) / 100,
			A: 1,
		}
	default:
		cf := colorful.Color{R: float64(c.a) / 255, G: float64(c.b) / 255, B: float64(c.c) / 255}
		h, s, l := cf.Hsl()
		return Hsla{H: float32(h / 360), S: float32(s), L: float32(l), A: 1}.wrapped()
	}
}

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Equal reports whether both colors hold the same variant and channels.
func (c Color) Equal(o Color) bool { return c.Canonical() == o.Canonical() }

// WithHue returns the color in HSL form with its hue replaced by v, a
// normalized position in [0,1] (1 wraps to 0°).
func (c Color) WithHue(v float32) Color {
	_, s, l := c.HSL()
	return HSL(roundInt(float64(clamp01(v))*360), s, l)
}

// WithSaturation returns the color in HSL form with its saturation replaced
// by v, a normalized position in [0,1].
func (c Color) WithSaturation(v float32) Color {
	h, _, l := c.HSL()
	return HSL(h, roundInt(float64(clamp01(v))*100), l)
}

// WithLightness returns the color in HSL form with its lightness replaced by
// v, a normalized position in [0,1].
func (c Color) WithLightness(v float32) Color {
	h, s, _ := c.HSL()
	return HSL(h, s, roundInt(float64(clamp01(v))*100))
}

// RandomRGB draws each channel uniformly from [0,255].
func RandomRGB(r *rand.Rand) Color {
	return RGB(r.Intn(256), r.Intn(256), r.Intn(256))
}

// RandomHSL draws hue uniformly from [0,360) and saturation and lightness
// from [0,100].
func RandomHSL(r *rand.Rand) Color {
	return HSL(r.Intn(360), r.Intn(101), r.Intn(101))
}

// Hsla is the floating point bridge between the RGB and HSL variants. H, S, L
// and A are all normalized to [0,1]; H is expected in [0,1).
type Hsla struct {
	H, S, L, A float32
}

// ToRGB quantizes the color to an RGB variant.
func (h Hsla) ToRGB() Color {
	r, g, b := h.colorful().RGB255()
	return RGB(int(r), int(g), int(b))
}

// ToHSL quantizes the color to an HSL variant, rounding to the nearest degree
// and percent.
func (h Hsla) ToHSL() Color {
	h = h.wrapped()
	return HSL(
		roundInt(float64(h.H)*360),
		roundInt(float64(clamp01(h.S))*100),
		roundInt(float64(clamp01(h.L))*100),
	)
}

// RGBA returns the color as an 8-bit color.RGBA, ignoring alpha (always
// fully opaque).
func (h Hsla) RGBA() color.RGBA {
	r, g, b := h.colorful().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (h Hsla) String() string {
	return fmt.Sprintf("hsla(%.4f, %.4f, %.4f, %.2f)", h.H, h.S, h.L, h.A)
}

func (h Hsla) colorful() colorful.Color {
	h = h.wrapped()
	return colorful.Hsl(float64(h.H)*360, float64(clamp01(h.S)), float64(clamp01(h.L))).Clamped()
}

// wrapped returns the color with its hue folded into [0,1).
func (h Hsla) wrapped() Hsla {
	h.H = WrapUnit(h.H)
	return h
}

// WrapUnit folds v into [0,1), treating it as a fraction of a turn.
func WrapUnit(v float32) float32 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return 0
	}
	v = math32.Mod(v, 1)
	if v < 0 {
		v++
	}
	if v >= 1 { // -tiny+1 rounds up to 1 in float32
		v = 0
	}
	return v
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(0, math32.Min(v, 1))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
