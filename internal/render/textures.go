package render

import (
	"io"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/iOliverNguyen/rustapps/internal/gradient"
)

var textureLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("UICOLORS_DEBUG_TEXTURES") == "1" {
		textureLogger = log.New(os.Stdout, "[textures] ", log.Ltime|log.Lmsgprefix)
	}
}

// TextureCache maps gradient images to GPU textures. Images are immutable, so
// an image is uploaded once and reused until a frame passes without it being
// painted, at which point its texture is freed.
type TextureCache struct {
	textures map[*gradient.Image]*texture
	frame    uint64
	stats    TextureStats
}

type texture struct {
	id       uint32
	bytes    int64
	lastUsed uint64
}

// TextureStats tracks texture residency and upload traffic.
type TextureStats struct {
	Resident      int
	ResidentBytes int64
	Uploads       int
	Evictions     int
}

// NewTextureCache returns an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[*gradient.Image]*texture)}
}

// Bind makes img's texture current on texture unit 0, uploading it first if
// needed. It returns false for empty images.
func (tc *TextureCache) Bind(img *gradient.Image) bool {
	if img.Empty() {
		return false
	}
	t, ok := tc.textures[img]
	if !ok {
		t = tc.upload(img)
		tc.textures[img] = t
	}
	t.lastUsed = tc.frame
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	return true
}

func (tc *TextureCache) upload(img *gradient.Image) *texture {
	pix := img.Pix
	w, h := pix.Bounds().Dx(), pix.Bounds().Dy()

	t := &texture{bytes: int64(len(pix.Pix))}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pix.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	tc.stats.Uploads++
	textureLogger.Printf("uploaded %s strip %dx%d as texture %d", img.Scale, w, h, t.id)
	return t
}

// EndFrame frees textures that were not bound during the frame and starts a
// new one.
func (tc *TextureCache) EndFrame() {
	for img, t := range tc.textures {
		if t.lastUsed != tc.frame {
			gl.DeleteTextures(1, &t.id)
			delete(tc.textures, img)
			tc.stats.Evictions++
			textureLogger.Printf("evicted texture %d", t.id)
		}
	}
	tc.frame++
}

// Delete frees every texture.
func (tc *TextureCache) Delete() {
	for img, t := range tc.textures {
		gl.DeleteTextures(1, &t.id)
		delete(tc.textures, img)
	}
}

// Stats returns residency and upload counters.
func (tc *TextureCache) Stats() TextureStats {
	s := tc.stats
	s.Resident = len(tc.textures)
	for _, t := range tc.textures {
		s.ResidentBytes += t.bytes
	}
	return s
}
