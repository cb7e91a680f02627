// Package geom provides the 2D primitives used for layout and input:
// - Points and axis-aligned boxes in layout (logical pixel) coordinates
// - Hit testing and box inflation for pointer targets
// - Affine transforms for mapping layout space to device/NDC space
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle. X and Y are the top-left corner.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Min returns the top-left corner.
func (b Box) Min() Point { return Point{b.X, b.Y} }

// Max returns the bottom-right corner.
func (b Box) Max() Point { return Point{b.X + b.W, b.Y + b.H} }

// Center returns the center of the box.
func (b Box) Center() Point { return Point{b.X + 0.5*b.W, b.Y + 0.5*b.H} }

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// SameSize reports whether both boxes have identical dimensions, regardless
// of position.
func (b Box) SameSize(o Box) bool { return b.W == o.W && b.H == o.H }

// Contains reports whether p lies inside the box. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// Inflate grows the box by dx on the left and right, and dy on the top and
// bottom. Negative values shrink it.
func (b Box) Inflate(dx, dy float64) Box {
	return Box{X: b.X - dx, Y: b.Y - dy, W: b.W + 2*dx, H: b.H + 2*dy}
}

// Scale multiplies position and size by s (e.g. logical to physical pixels).
func (b Box) Scale(s float64) Box {
	return Box{X: b.X * s, Y: b.Y * s, W: b.W * s, H: b.H * s}
}

func (b Box) String() string {
	return fmt.Sprintf("[%.1f,%.1f %.1fx%.1f]", b.X, b.Y, b.W, b.H)
}

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}

// Inv returns the inverse of the affine transform.
// Returns an error if the transform is not invertible (determinant is zero).
func (t Affine) Inv() (Affine, error) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Affine{}, fmt.Errorf("affine transform is not invertible (determinant ≈ 0)")
	}
	return MakeAffine(
		t.E/det, -t.B/det, (t.B*t.F-t.C*t.E)/det,
		-t.D/det, t.A/det, (t.C*t.D-t.A*t.F)/det,
	), nil
}

// ScreenToNDC returns the transform mapping a w×h screen (origin top-left, y
// down) to OpenGL normalized device coordinates (origin center, y up).
func ScreenToNDC(w, h float64) Affine {
	return MakeAffine(
		2.0/w, 0, -1,
		0, -2.0/h, 1,
	)
}

// Circle approximates a circle with a closed polygon of n vertices.
func Circle(center Point, radius float64, n int) []Point {
	if n < 3 {
		n = 3
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return pts
}

// Rect returns the four corners of the box in clockwise order.
func (b Box) Rect() []Point {
	return []Point{
		{b.X, b.Y},
		{b.X + b.W, b.Y},
		{b.X + b.W, b.Y + b.H},
		{b.X, b.Y + b.H},
	}
}
