// Package meshes provides the five primitive meshes the scene is built from.
// Each mesh is unit-sized and generated on first use so GPU resources are
// allocated after the window/GL context exists.
package meshes

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pcb-scene/internal/placement"
	"pcb-scene/internal/transform"
)

// Mesh resolution. Spheres and cylinders are smooth enough at these counts
// for close camera passes over the board.
const (
	sphereRings    = 24
	sphereSlices   = 24
	cylinderSlices = 24
	torusSegments  = 24
	torusSides     = 32
)

// Provider caches one mesh per primitive kind. Plane, box, sphere, and torus
// are centered at their local origin; the cylinder has its base at Y=0 and
// top at Y=1, which the placement data relies on (component cans and leads
// sit on the board surface).
type Provider struct {
	cache map[placement.MeshKind]rl.Mesh
}

// NewProvider returns a provider with no meshes generated yet.
func NewProvider() *Provider {
	return &Provider{cache: make(map[placement.MeshKind]rl.Mesh)}
}

func (p *Provider) mesh(kind placement.MeshKind) rl.Mesh {
	if m, ok := p.cache[kind]; ok {
		return m
	}
	var m rl.Mesh
	switch kind {
	case placement.Plane:
		m = rl.GenMeshPlane(1, 1, 1, 1)
	case placement.Box:
		m = rl.GenMeshCube(1, 1, 1)
	case placement.Sphere:
		// Radius 0.5 so diameter matches the unit box.
		m = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case placement.Cylinder:
		m = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
	case placement.Torus:
		// Ring diameter 1 with a 0.25 tube, unit-sized like the rest.
		m = rl.GenMeshTorus(0.25, 1, torusSegments, torusSides)
	}
	p.cache[kind] = m
	return m
}

// Draw renders one instance of kind with the given material and model matrix.
// Must be called between BeginMode3D and EndMode3D.
func (p *Provider) Draw(kind placement.MeshKind, mtl rl.Material, m transform.Mat4) {
	rl.DrawMesh(p.mesh(kind), mtl, rlMatrix(m))
}

// Unload releases every generated mesh. Call at teardown while the GL context
// still exists.
func (p *Provider) Unload() {
	for kind, m := range p.cache {
		rl.UnloadMesh(&m)
		delete(p.cache, kind)
	}
}

// rlMatrix converts a column-major Mat4; the renderer's mN field is the N-th
// column-major element.
func rlMatrix(m transform.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
