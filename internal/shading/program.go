// Package shading owns the uniform state of the scene shader: the program
// wrapper, the per-draw binding facade, and the light setup.
package shading

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pcb-scene/internal/transform"
)

// Uniform names form the wire contract with the shader sources below. The
// model matrix, view position, and projection/view matrices use the renderer's
// conventional names and are partly bound by the renderer itself at draw time.
const (
	UniformModel        = "matModel"
	UniformViewPosition = "viewPosition"
	UniformObjectColor  = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"
)

// Program pushes named uniform groups into the active shader. The concrete
// implementation talks to the GPU; tests substitute a recorder.
type Program interface {
	SetMat4(name string, m transform.Mat4)
	SetVec2(name string, x, y float32)
	SetVec3(name string, v [3]float32)
	SetVec4(name string, v [4]float32)
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	// SetSampler binds the texture occupying slot to the named sampler. A
	// slot that maps to no texture uploads the raw slot value, so a sentinel
	// samples an undefined unit rather than crashing.
	SetSampler(name string, slot int)
}

// RaylibProgram wraps the compiled scene shader and caches uniform locations
// on first use.
type RaylibProgram struct {
	shader rl.Shader
	locs   map[string]int32
	texAt  func(slot int) (rl.Texture2D, bool)
}

// NewRaylibProgram compiles the embedded scene shader. texAt resolves a
// texture slot to the texture bound there; it is consulted when a sampler
// uniform is set. Must run after the window and GL context exist.
func NewRaylibProgram(texAt func(slot int) (rl.Texture2D, bool)) *RaylibProgram {
	return &RaylibProgram{
		shader: rl.LoadShaderFromMemory(sceneVS, sceneFS),
		locs:   make(map[string]int32),
		texAt:  texAt,
	}
}

// Shader returns the underlying shader for attaching to a draw material.
func (p *RaylibProgram) Shader() rl.Shader {
	return p.shader
}

// Unload releases the shader program.
func (p *RaylibProgram) Unload() {
	rl.UnloadShader(p.shader)
}

func (p *RaylibProgram) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(p.shader, name)
	p.locs[name] = l
	return l
}

// intBits reinterprets an int32 for SetShaderValue, which only accepts
// float32 slices; the raw bits reach glUniform1i unchanged.
func intBits(v int32) []float32 {
	return []float32{math.Float32frombits(uint32(v))}
}

func (p *RaylibProgram) SetMat4(name string, m transform.Mat4) {
	if l := p.loc(name); l >= 0 {
		rl.SetShaderValueMatrix(p.shader, l, rlMatrix(m))
	}
}

func (p *RaylibProgram) SetVec2(name string, x, y float32) {
	if l := p.loc(name); l >= 0 {
		rl.SetShaderValue(p.shader, l, []float32{x, y}, rl.ShaderUniformVec2)
	}
}

func (p *RaylibProgram) SetVec3(name string, v [3]float32) {
	if l := p.loc(name); l >= 0 {
		rl.SetShaderValue(p.shader, l, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3)
	}
}

func (p *RaylibProgram) SetVec4(name string, v [4]float32) {
	if l := p.loc(name); l >= 0 {
		rl.SetShaderValue(p.shader, l, []float32{v[0], v[1], v[2], v[3]}, rl.ShaderUniformVec4)
	}
}

func (p *RaylibProgram) SetFloat(name string, v float32) {
	if l := p.loc(name); l >= 0 {
		rl.SetShaderValue(p.shader, l, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (p *RaylibProgram) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	if l := p.loc(name); l >= 0 {
		rl.SetShaderValue(p.shader, l, intBits(i), rl.ShaderUniformInt)
	}
}

func (p *RaylibProgram) SetSampler(name string, slot int) {
	l := p.loc(name)
	if l < 0 {
		return
	}
	if tex, ok := p.texAt(slot); ok {
		rl.SetShaderValueTexture(p.shader, l, tex)
		return
	}
	rl.SetShaderValue(p.shader, l, intBits(int32(slot)), rl.ShaderUniformInt)
}

// rlMatrix converts a column-major Mat4 to the renderer's matrix type, whose
// mN field holds the N-th column-major element.
func rlMatrix(m transform.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
