package render

import (
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked shader program and its uniform locations.
type Program struct {
	id         uint32
	uTransform int32 // uniform location for transformation matrix
	uTexture   int32 // sampler location, -1 for untextured programs
}

// ShaderManager owns the two programs the renderer draws with: one for
// solid-color triangles and one for textured quads.
type ShaderManager struct {
	color   *Program
	texture *Program
}

// Vertex shader for solid geometry. Applies the uniform transformation matrix
// and forwards the per-vertex color.
const colorVertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uTransform;

out vec4 vColor;

void main() {
    gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const colorFragmentShaderSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Vertex shader for gradient strips. Forwards texture coordinates.
const textureVertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

uniform mat4 uTransform;

out vec2 vUV;

void main() {
    gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
    vUV = aUV;
}
` + "\x00"

const textureFragmentShaderSource = `
#version 330 core
in vec2 vUV;
out vec4 FragColor;

uniform sampler2D uTexture;

void main() {
    FragColor = texture(uTexture, vUV);
}
` + "\x00"

// NewShaderManager compiles and links both programs.
func NewShaderManager() *ShaderManager {
	return &ShaderManager{
		color:   newProgram(colorVertexShaderSource, colorFragmentShaderSource),
		texture: newProgram(textureVertexShaderSource, textureFragmentShaderSource),
	}
}

// UseColor binds the solid-color program with the given transform.
func (sm *ShaderManager) UseColor(matrix [16]float32) {
	sm.color.use(matrix)
}

// UseTexture binds the textured program with the given transform, sampling
// from texture unit 0.
func (sm *ShaderManager) UseTexture(matrix [16]float32) {
	sm.texture.use(matrix)
	gl.Uniform1i(sm.texture.uTexture, 0)
}

// Delete frees both programs.
func (sm *ShaderManager) Delete() {
	gl.DeleteProgram(sm.color.id)
	gl.DeleteProgram(sm.texture.id)
}

func (p *Program) use(matrix [16]float32) {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.uTransform, 1, false, &matrix[0])
}

func newProgram(vertexSource, fragmentSource string) *Program {
	vertexShader := compileShader(vertexSource, gl.VERTEX_SHADER)
	defer gl.DeleteShader(vertexShader)

	fragmentShader := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	defer gl.DeleteShader(fragmentShader)

	p := &Program{id: gl.CreateProgram()}
	gl.AttachShader(p.id, vertexShader)
	gl.AttachShader(p.id, fragmentShader)
	gl.LinkProgram(p.id)

	// Check linking status.
	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.id, logLength, nil, gl.Str(logText))
		log.Fatalf("Shader linking failed: %s", logText)
	}

	p.uTransform = gl.GetUniformLocation(p.id, gl.Str("uTransform\x00"))
	p.uTexture = gl.GetUniformLocation(p.id, gl.Str("uTexture\x00"))
	return p
}

// compileShader compiles a single shader from source.
func compileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	// Check compilation status.
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		log.Fatalf("Shader compilation failed: %s", logText)
	}

	return shader
}
