package panel

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
	"github.com/iOliverNguyen/rustapps/internal/geom"
	"github.com/iOliverNguyen/rustapps/internal/gradient"
	"github.com/iOliverNguyen/rustapps/internal/library"
	"github.com/iOliverNguyen/rustapps/internal/palette"
	"github.com/iOliverNguyen/rustapps/internal/slider"
)

type recorder struct {
	images  int
	circles int
	rects   []geom.Box
	fills   []color.RGBA
}

func (r *recorder) Paint(*gradient.Image, geom.Box)            { r.images++ }
func (r *recorder) FillCircle(geom.Point, float64, color.RGBA) { r.circles++ }

func (r *recorder) FillRect(dst geom.Box, c color.RGBA) {
	r.rects = append(r.rects, dst)
	r.fills = append(r.fills, c)
}

func newPanel(t *testing.T, c colorval.Color, lib *library.Library) *Panel {
	t.Helper()
	p := New(c, DefaultOptions(), lib)
	p.Layout(geom.MakePoint(0, 0), 1)
	t.Cleanup(p.Close)
	return p
}

func TestLayout(t *testing.T) {
	p := newPanel(t, colorval.HSL(200, 50, 50), nil)

	tests := []struct {
		scale gradient.Scale
		want  geom.Box
	}{
		{gradient.Hue, geom.MakeBox(0, 68, 300, 12)},
		{gradient.Saturation, geom.MakeBox(0, 100, 300, 12)},
		{gradient.Lightness, geom.MakeBox(0, 132, 300, 12)},
	}
	for _, tt := range tests {
		b, ok := p.Slider(tt.scale).Bounds()
		require.True(t, ok)
		assert.Equal(t, tt.want, b, "%s", tt.scale)
	}

	w, h := p.Size()
	assert.Equal(t, geom.MakeBox(0, 0, w, h), p.Bounds())
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 210.0, h)
}

func TestReadoutAndPalette(t *testing.T) {
	p := newPanel(t, colorval.HSL(200, 50, 50), nil)

	assert.Equal(t, Readout{Hex: "#4095bf", H: 200, S: 50, L: 50}, p.Readout())
	assert.Equal(t, "#4095bf  hsl(200, 50%, 50%)", p.Readout().String())

	pal := p.Palette()
	assert.InDelta(t, 200.0/360, pal.H, 1e-6)
	assert.InDelta(t, 0.5, pal.S, 1e-6)
	assert.Equal(t, pal.Swatches(), p.Swatches())

	accent := p.Accent()
	assert.InDelta(t, 0.6, accent.L, 1e-6)
	assert.InDelta(t, 200.0/360, accent.H, 1e-6)
}

func TestHueShiftOption(t *testing.T) {
	opts := DefaultOptions()
	opts.HueShift = 0.2
	p := New(colorval.HSL(180, 50, 50), opts, nil)
	defer p.Close()

	assert.Equal(t, float32(0.2), p.Palette().HueShift)
	assert.NotEqual(t, palette.From(p.Color().Hsla()).Swatches(), p.Swatches())
}

func TestSliderClickScenario(t *testing.T) {
	p := newPanel(t, colorval.HSL(200, 50, 50), nil)

	// Saturation track spans y 100..112; x at a quarter of its width.
	require.True(t, p.HandlePointer(slider.Down(geom.MakePoint(75, 106))))
	assert.Equal(t, colorval.HSL(200, 24, 50), p.Color())
	assert.Equal(t, Readout{Hex: p.Color().ToRGB().String(), H: 200, S: 24, L: 50}, p.Readout())
	assert.Same(t, p.Slider(gradient.Saturation), p.Captured())

	assert.False(t, p.HandlePointer(slider.Up(geom.MakePoint(75, 106))))
	assert.Nil(t, p.Captured())
}

func TestDragStaysOnCapturedSlider(t *testing.T) {
	p := newPanel(t, colorval.HSL(200, 50, 50), nil)

	require.True(t, p.HandlePointer(slider.Down(geom.MakePoint(150, 74))))
	h, s, l := p.Color().HSL()
	assert.Equal(t, []int{180, 50, 50}, []int{h, s, l})

	// Drag down across the saturation track: only hue changes.
	require.True(t, p.HandlePointer(slider.Move(geom.MakePoint(75, 106), true)))
	h, s, l = p.Color().HSL()
	assert.Equal(t, []int{88, 50, 50}, []int{h, s, l})
	assert.Same(t, p.Slider(gradient.Hue), p.Captured())

	p.HandlePointer(slider.Up(geom.MakePoint(75, 106)))
	assert.Nil(t, p.Captured())
	assert.Equal(t, slider.Idle, p.Slider(gradient.Hue).State())
}

func TestMoveWithHeldButtonCapturesSlider(t *testing.T) {
	p := newPanel(t, colorval.HSL(200, 50, 50), nil)

	require.True(t, p.HandlePointer(slider.Move(geom.MakePoint(150, 138), true)))
	assert.Same(t, p.Slider(gradient.Lightness), p.Captured())
	_, _, l := p.Color().HSL()
	assert.Equal(t, 50, l)

	require.False(t, p.HandlePointer(slider.Move(geom.MakePoint(150, 138), false)))
	assert.Nil(t, p.Captured())
}

func TestPointerOutsideSliders(t *testing.T) {
	p := newPanel(t, colorval.HSL(200, 50, 50), nil)
	assert.False(t, p.HandlePointer(slider.Down(geom.MakePoint(150, 20))))
	assert.Nil(t, p.Captured())
	assert.Equal(t, colorval.HSL(200, 50, 50), p.Color())
}

func TestLibraryMatch(t *testing.T) {
	p := newPanel(t, colorval.HSL(200, 50, 50), library.Default())
	_, ok := p.Match()
	assert.False(t, ok)
	assert.Equal(t, -1, p.MatchIndex())

	p.SetColor(colorval.RGB(0xf4, 0x3f, 0x5e))
	item, ok := p.Match()
	require.True(t, ok)
	assert.Equal(t, "Rose", item.Name)
	assert.Equal(t, 0, p.MatchIndex())

	p.SetLibrary(nil)
	_, ok = p.Match()
	assert.False(t, ok)

	p.SetLibrary(library.Default())
	item, ok = p.Match()
	require.True(t, ok)
	assert.Equal(t, "Rose", item.Name)
}

func TestPaint(t *testing.T) {
	p := newPanel(t, colorval.HSL(0, 100, 50), nil)
	r := &recorder{}
	p.Paint(r)

	assert.Equal(t, 3, r.images)
	assert.Equal(t, 6, r.circles)
	require.Len(t, r.rects, 1+palette.Size+1)

	assert.Equal(t, geom.MakeBox(0, 0, 300, 48), r.rects[0])
	assert.Equal(t, colorval.RGB(255, 0, 0).RGBA(), r.fills[0])

	swatches := p.Swatches()
	for i := 0; i < palette.Size; i++ {
		assert.Equal(t, swatches[i], r.fills[1+i])
		assert.InDelta(t, float64(i)*300/palette.Size, r.rects[1+i].X, 1e-9)
		assert.Equal(t, 164.0, r.rects[1+i].Y)
	}
	assert.Equal(t, p.Accent().RGBA(), r.fills[len(r.fills)-1])
	assert.Equal(t, 206.0, r.rects[len(r.rects)-1].Y)
}

func TestClose(t *testing.T) {
	p := New(colorval.HSL(200, 50, 50), DefaultOptions(), nil)
	p.Close()
	p.Close()

	before := p.Readout()
	p.Selection().Set(colorval.HSL(10, 10, 10))
	assert.Equal(t, before, p.Readout())
}
