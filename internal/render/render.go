// Package render draws the color panel with OpenGL.
//
// The Renderer implements the panel surface: gradient strips are uploaded as
// textures (see TextureCache) and drawn as textured quads, while swatches,
// previews and slider thumbs are triangulated polygons in solid colors.
// Coordinates passed in are layout units; the view transform scales them to
// framebuffer pixels and then to normalized device coordinates.
package render

import (
	"image/color"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/iOliverNguyen/rustapps/internal/geom"
	"github.com/iOliverNguyen/rustapps/internal/gradient"
	"github.com/iOliverNguyen/rustapps/internal/render/mesh"
)

const circleSegments = 48

type Renderer struct {
	w, h  int     // framebuffer size in pixels
	scale float64 // layout units to framebuffer pixels

	shaderManager *ShaderManager
	textures      *TextureCache
	vao, vbo      uint32
	builder       mesh.Builder
	matrix        [16]float32

	frameStart time.Time
	frame      Stats
	stats      Stats
}

// Stats tracks rendering performance metrics for the last completed frame.
type Stats struct {
	LastDrawTimeUs    float64 // time spent between Begin and End in microseconds
	DrawCallsPerFrame int
	TrianglesPerFrame int
	Textures          TextureStats
}

// NewRenderer compiles shaders and allocates the streaming vertex buffer. It
// must be called with a current OpenGL context.
func NewRenderer() *Renderer {
	r := &Renderer{
		scale:         1,
		shaderManager: NewShaderManager(),
		textures:      NewTextureCache(),
	}
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	return r
}

// SetView sets the framebuffer size and the layout-to-pixel scale.
func (r *Renderer) SetView(w, h int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	r.w, r.h, r.scale = w, h, scale
	r.matrix = r.computeTransformMatrix()
}

// Begin starts a frame.
func (r *Renderer) Begin() {
	r.frameStart = time.Now()
	r.frame = Stats{}

	gl.Viewport(0, 0, int32(r.w), int32(r.h))
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// End finishes the frame, releasing textures that were not painted.
func (r *Renderer) End() {
	r.textures.EndFrame()
	r.frame.Textures = r.textures.Stats()
	r.frame.LastDrawTimeUs = float64(time.Since(r.frameStart).Microseconds())
	r.stats = r.frame
}

// Paint draws a gradient strip stretched over dst.
func (r *Renderer) Paint(img *gradient.Image, dst geom.Box) {
	if !r.textures.Bind(img) {
		return
	}
	r.shaderManager.UseTexture(r.matrix)
	r.draw(mesh.TexturedQuad(dst), mesh.TextureStride, 2)
}

// FillRect draws a solid rectangle.
func (r *Renderer) FillRect(dst geom.Box, c color.RGBA) {
	r.fill(dst.Rect(), c)
}

// FillCircle draws a solid disc.
func (r *Renderer) FillCircle(center geom.Point, radius float64, c color.RGBA) {
	r.fill(geom.Circle(center, radius, circleSegments), c)
}

func (r *Renderer) fill(polygon []geom.Point, c color.RGBA) {
	r.builder.Reset()
	if err := r.builder.Fill(polygon, c); err != nil {
		log.Printf("WARNING: skipping shape: %v", err)
		return
	}
	r.shaderManager.UseColor(r.matrix)
	r.draw(r.builder.Vertices, mesh.ColorStride, 4)
}

// draw streams interleaved vertices (two position floats followed by extra
// attribute floats) and draws them as triangles.
func (r *Renderer) draw(vertices []float32, stride int, extra int32) {
	if len(vertices) == 0 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STREAM_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, int32(stride*4), 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, extra, gl.FLOAT, false, int32(stride*4), 2*4)
	gl.EnableVertexAttribArray(1)

	count := len(vertices) / stride
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	r.frame.DrawCallsPerFrame++
	r.frame.TrianglesPerFrame += count / 3
}

// Stats returns the statistics of the last completed frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Delete frees all GPU resources.
func (r *Renderer) Delete() {
	r.textures.Delete()
	r.shaderManager.Delete()
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
}

// computeTransformMatrix computes the transformation matrix from layout
// coordinates to OpenGL NDC.
func (r *Renderer) computeTransformMatrix() [16]float32 {
	layoutToScreen := geom.MakeAffine(r.scale, 0, 0, 0, r.scale, 0)
	screenToNDC := geom.ScreenToNDC(float64(r.w), float64(r.h))
	return affineToMatrix4(screenToNDC.Mul(layoutToScreen))
}

// affineToMatrix4 converts an affine transform to OpenGL 4x4 matrix format.
func affineToMatrix4(transform geom.Affine) [16]float32 {
	return [16]float32{
		float32(transform.A), float32(transform.D), 0, 0,
		float32(transform.B), float32(transform.E), 0, 0,
		0, 0, 1, 0,
		float32(transform.C), float32(transform.F), 0, 1,
	}
}
