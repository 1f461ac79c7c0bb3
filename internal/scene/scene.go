// Package scene prepares and renders the PCB assembly: it loads the placement
// script, registers textures and materials, sets up lighting, and issues one
// draw per placement each frame.
package scene

import (
	_ "embed"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pcb-scene/internal/config"
	"pcb-scene/internal/logger"
	"pcb-scene/internal/material"
	"pcb-scene/internal/meshes"
	"pcb-scene/internal/placement"
	"pcb-scene/internal/shading"
	"pcb-scene/internal/texture"
	"pcb-scene/internal/transform"
)

//go:embed pcb.yaml
var builtinScript []byte

// textureDirs are tried in order so texture files are found whether run from
// the repo root or from cmd/pcbscene.
var textureDirs = []string{
	"assets/textures",
	"../../assets/textures",
}

// Scene holds a free camera and everything needed to draw the placement
// script. GPU-side preparation (texture upload, shader compile, mesh
// generation) is deferred to the first Draw so it runs after the window/GL
// context exists.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	log    *logger.Logger
	script *placement.Script

	gpu       *texture.RaylibGPU
	textures  *texture.Registry
	materials *material.Table
	prog      *shading.RaylibProgram
	binder    *shading.Binder
	meshes    *meshes.Provider
	drawMtl   rl.Material

	prepared   bool
	cursorDone bool
}

// New returns a scene with a perspective camera looking at the board. The
// placement script comes from prefs.ScenePath when set, otherwise the
// built-in PCB scene. A script that fails to load or validate is logged and
// replaced by an empty one; the viewer still runs.
func New(prefs config.Prefs, log *logger.Logger) *Scene {
	s := &Scene{log: log, GridVisible: prefs.GridVisible}
	s.Camera.Position = rl.NewVector3(0, 7, 14)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.script = loadScript(prefs.ScenePath, log)
	return s
}

func loadScript(path string, log *logger.Logger) *placement.Script {
	if path != "" {
		s, err := placement.Load(path)
		if err == nil {
			return s
		}
		log.Logf("scene script %s: %v, falling back to built-in scene", path, err)
	}
	s, err := placement.Parse(builtinScript)
	if err != nil {
		log.Logf("built-in scene script: %v", err)
		return &placement.Script{}
	}
	return s
}

// ensurePrepared runs once, on the first Draw: textures are decoded and
// uploaded in script order (fixing tag-to-slot mapping), materials defined,
// the shader compiled, and lights uploaded. A texture that fails to load is
// already logged by the registry; preparation continues without it.
func (s *Scene) ensurePrepared() {
	if s.prepared {
		return
	}
	s.prepared = true

	s.gpu = texture.NewRaylibGPU()
	s.textures = texture.NewRegistry(s.gpu, s.log)
	for _, t := range s.script.Textures {
		_ = s.textures.Load(findTexture(t.File), t.Tag)
	}
	s.textures.Bind()

	s.materials = material.NewTable()
	for _, m := range s.script.Materials {
		s.materials.Define(m.Tag, m.Diffuse, m.Specular, m.Shininess)
	}

	s.prog = shading.NewRaylibProgram(s.textureAt)
	s.binder = shading.NewBinder(s.prog, s.textures, s.materials, s.log)
	shading.SetupLights(s.prog, shading.DefaultDirectionalLight(), shading.DefaultPointLight())

	s.meshes = meshes.NewProvider()
	s.drawMtl = rl.LoadMaterialDefault()
	s.drawMtl.Shader = s.prog.Shader()
}

// findTexture resolves a script texture file against the known texture
// directories; when nothing exists the first candidate is returned so the
// registry logs a load failure for it.
func findTexture(file string) string {
	var first string
	for _, dir := range textureDirs {
		path := filepath.Join(dir, file)
		if first == "" {
			first = path
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return first
}

// textureAt maps a registry slot to the texture bound there, for sampler
// uniforms.
func (s *Scene) textureAt(slot int) (rl.Texture2D, bool) {
	handle := s.textures.HandleAt(slot)
	if handle == texture.NotFound {
		return rl.Texture2D{}, false
	}
	return s.gpu.Texture(handle)
}

// Update runs once per frame. The free camera lets the user orbit, pan, and
// zoom around the board; the cursor is captured for camera control.
func (s *Scene) Update() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the scene: every placement in script order, each with its full
// draw state applied before the mesh is drawn.
func (s *Scene) Draw() {
	s.ensurePrepared()
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	s.prog.SetVec3(shading.UniformViewPosition, [3]float32{
		s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z,
	})
	for i := range s.script.Placements {
		s.drawPlacement(&s.script.Placements[i])
	}
	rl.EndMode3D()
}

func (s *Scene) drawPlacement(p *placement.Placement) {
	m := transform.Compose(p.Scale, p.Rotation, p.Position)
	st := shading.State{
		Transform:  m,
		UseTexture: p.Textured(),
		Texture:    p.Texture,
		Color:      p.FlatColor(),
		UVScale:    p.UV(),
		Material:   p.Material,
	}
	s.binder.Apply(st)
	s.meshes.Draw(p.Mesh, s.drawMtl, m)
}

// Close releases GPU resources: every texture once, the shader, and the
// generated meshes. Call before the window closes.
func (s *Scene) Close() {
	if !s.prepared {
		return
	}
	s.textures.Release()
	s.meshes.Unload()
	s.prog.Unload()
}

const (
	gridExtent = 20
	gridAlpha  = 60
)

// drawGrid draws a reference grid on the XZ plane, useful when authoring
// placement scripts.
func drawGrid() {
	c := rl.NewColor(128, 128, 128, gridAlpha)
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i++ {
		start.X, start.Y, start.Z = float32(i), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}
}
