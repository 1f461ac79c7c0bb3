package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcb-scene/internal/placement"
)

// The built-in script must parse and every tag it references must resolve.
func TestBuiltinScript(t *testing.T) {
	s, err := placement.Parse(builtinScript)
	require.NoError(t, err)

	assert.Len(t, s.Textures, 11)
	assert.Len(t, s.Materials, 6)
	assert.Len(t, s.Placements, 67)

	// The ESD mat is drawn first, before anything that sits on it.
	floor := s.Placements[0]
	assert.Equal(t, "esd-mat", floor.Name)
	assert.Equal(t, placement.Plane, floor.Mesh)
	assert.Equal(t, [3]float32{20, 1, 10}, floor.Scale)
	assert.Equal(t, "planeMaterial", floor.Material)
	assert.Equal(t, "esdmat", floor.Texture)
	assert.Equal(t, [2]float32{5, 1}, floor.UV())

	// esdmat is the first loaded texture, so it occupies slot 0.
	assert.Equal(t, "esdmat", s.Textures[0].Tag)

	board := s.Placements[1]
	assert.Equal(t, placement.Box, board.Mesh)
	assert.Equal(t, "fr4Material", board.Material)
	assert.Equal(t, "pcba", board.Texture)
}

// Every mesh kind the provider supports appears in the shipped scene.
func TestBuiltinScriptUsesAllPrimitives(t *testing.T) {
	s, err := placement.Parse(builtinScript)
	require.NoError(t, err)

	seen := make(map[placement.MeshKind]int)
	for _, p := range s.Placements {
		seen[p.Mesh]++
	}
	for _, kind := range []placement.MeshKind{
		placement.Plane, placement.Box, placement.Sphere, placement.Cylinder, placement.Torus,
	} {
		assert.Positive(t, seen[kind], "no %s placements", kind)
	}
}

func TestFindTextureFallsBackToFirstCandidate(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Equal(t, "assets/textures/esdmat.png", findTexture("esdmat.png"))
}
