package app

import (
	"github.com/iOliverNguyen/rustapps/internal/geom"
)

const (
	minScale = 0.5
	maxScale = 4.0
)

// View manages the viewport: its size in layout units (screen coordinates)
// and the content scale mapping layout units to framebuffer pixels.
type View struct {
	Scale         float64
	Width, Height float64
}

// NewView creates a new view with a content scale of 1.
func NewView(width, height float64) *View {
	return &View{
		Scale:  1.0,
		Width:  width,
		Height: height,
	}
}

// SetScale sets the content scale, clamping to a valid range.
func (vs *View) SetScale(scale float64) {
	if scale < minScale {
		vs.Scale = minScale
	} else if scale > maxScale {
		vs.Scale = maxScale
	} else {
		vs.Scale = scale
	}
}

// SetViewport updates the viewport dimensions.
func (vs *View) SetViewport(width, height float64) {
	vs.Width = width
	vs.Height = height
}

// FramebufferSize returns the viewport size in pixels.
func (vs *View) FramebufferSize() (int, int) {
	return int(vs.Width*vs.Scale + 0.5), int(vs.Height*vs.Scale + 0.5)
}

// CenterOrigin returns the top-left corner at which content of size w×h is
// centered in the viewport. Content larger than the viewport is pinned to the
// top-left edge.
func (vs *View) CenterOrigin(w, h float64) geom.Point {
	x := (vs.Width - w) / 2
	y := (vs.Height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return geom.MakePoint(x, y)
}
