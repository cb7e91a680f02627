// Package mesh builds the vertex data the renderer uploads: triangulated
// solid-color polygons and textured quads. It has no OpenGL dependency.
package mesh

import (
	"fmt"
	"image/color"

	"github.com/rclancey/earcut"

	"github.com/iOliverNguyen/rustapps/internal/geom"
)

const (
	ColorStride   = 6 // x, y, r, g, b, a
	TextureStride = 4 // x, y, u, v
)

// Triangulate splits a simple polygon into triangles using the earcut
// algorithm. Vertices may be in either winding order.
func Triangulate(polygon []geom.Point) ([][3]geom.Point, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(polygon))
	}

	// Format: [x0, y0, x1, y1, ..., xn, yn]
	coords := make([]float64, len(polygon)*2)
	for i, p := range polygon {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(polygon), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle count (indices: %d, not divisible by 3)", len(indices))
	}

	triangles := make([][3]geom.Point, len(indices)/3)
	for t := range triangles {
		for v := 0; v < 3; v++ {
			i := indices[t*3+v]
			triangles[t][v] = geom.MakePoint(coords[i*2], coords[i*2+1])
		}
	}
	return triangles, nil
}

// Builder accumulates solid-color triangles, ColorStride floats per vertex.
type Builder struct {
	Vertices []float32
}

// Reset empties the builder, keeping its storage.
func (b *Builder) Reset() { b.Vertices = b.Vertices[:0] }

// Len returns the number of vertices accumulated.
func (b *Builder) Len() int { return len(b.Vertices) / ColorStride }

// Fill triangulates polygon and appends it in color c.
func (b *Builder) Fill(polygon []geom.Point, c color.RGBA) error {
	triangles, err := Triangulate(polygon)
	if err != nil {
		return err
	}
	r, g, bl, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for _, tri := range triangles {
		for _, p := range tri {
			b.Vertices = append(b.Vertices, float32(p.X), float32(p.Y), r, g, bl, a)
		}
	}
	return nil
}

// TexturedQuad returns two triangles covering dst with texture coordinates
// spanning the whole texture, TextureStride floats per vertex. v grows
// downward, matching row-major image data uploaded top row first.
func TexturedQuad(dst geom.Box) []float32 {
	x0, y0 := float32(dst.X), float32(dst.Y)
	x1, y1 := float32(dst.X+dst.W), float32(dst.Y+dst.H)
	return []float32{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,

		x0, y0, 0, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}
}
