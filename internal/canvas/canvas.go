// Package canvas is an offscreen software surface. It implements the panel
// and slider surfaces over an *image.RGBA, used for PNG snapshots and for
// checking painted output in tests.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/iOliverNguyen/rustapps/internal/geom"
	"github.com/iOliverNguyen/rustapps/internal/gradient"
)

// Canvas paints into an RGBA image. Coordinates passed to its methods are in
// layout units and are multiplied by Scale to get pixels.
type Canvas struct {
	Img   *image.RGBA
	Scale float64
}

// New returns a canvas of w×h pixels cleared to white.
func New(w, h int, scaleFactor float64) *Canvas {
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	c := &Canvas{
		Img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		Scale: scaleFactor,
	}
	c.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return c
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// rect converts a layout box into a pixel rectangle.
func (c *Canvas) rect(b geom.Box) image.Rectangle {
	px := func(v float64) int { return int(math.Round(v * c.Scale)) }
	return image.Rect(px(b.X), px(b.Y), px(b.X+b.W), px(b.Y+b.H))
}

// Paint copies img into dst, scaling if the sizes differ.
func (c *Canvas) Paint(img *gradient.Image, dst geom.Box) {
	if img.Empty() {
		return
	}
	r := c.rect(dst)
	src := img.Pix.Bounds()
	if r.Dx() == src.Dx() && r.Dy() == src.Dy() {
		draw.Draw(c.Img, r, img.Pix, src.Min, draw.Src)
		return
	}
	draw.ApproxBiLinear.Scale(c.Img, r, img.Pix, src, draw.Src, nil)
}

// FillRect fills dst with col.
func (c *Canvas) FillRect(dst geom.Box, col color.RGBA) {
	draw.Draw(c.Img, c.rect(dst), image.NewUniform(col), image.Point{}, draw.Over)
}

// FillCircle fills the pixels whose centers lie within radius of center.
func (c *Canvas) FillCircle(center geom.Point, radius float64, col color.RGBA) {
	center = center.Scale(c.Scale)
	radius *= c.Scale
	box := geom.MakeBox(center.X-radius, center.Y-radius, 2*radius, 2*radius)
	r := image.Rect(
		int(math.Floor(box.X)), int(math.Floor(box.Y)),
		int(math.Ceil(box.X+box.W)), int(math.Ceil(box.Y+box.H)),
	).Intersect(c.Img.Bounds())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := geom.MakePoint(float64(x)+0.5, float64(y)+0.5)
			if geom.Dist(p, center) <= radius {
				c.Img.SetRGBA(x, y, col)
			}
		}
	}
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Img)
}

// SavePNG writes the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
