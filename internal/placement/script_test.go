package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
textures:
  - { file: esdmat.png, tag: esdmat }
  - { file: pcba.png, tag: pcba }
materials:
  - { tag: planeMaterial, diffuse: [0.20, 0.30, 0.35], specular: [0.20, 0.20, 0.20], shininess: 8 }
placements:
  - name: floor
    mesh: plane
    scale: [20, 1, 10]
    position: [0, 0, 0]
    material: planeMaterial
    texture: esdmat
    uv: [5, 1]
  - name: marker
    mesh: sphere
    scale: [0.5, 0.5, 0.5]
    rotation: [90, 0, 0]
    position: [1, 2, 3]
    color: [1, 0, 0, 1]
`

func TestParseSample(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, s.Placements, 2)

	floor := s.Placements[0]
	assert.Equal(t, Plane, floor.Mesh)
	assert.Equal(t, [3]float32{20, 1, 10}, floor.Scale)
	assert.Equal(t, [3]float32{0, 0, 0}, floor.Rotation)
	assert.True(t, floor.Textured())
	assert.Equal(t, "esdmat", floor.Texture)
	assert.Equal(t, [2]float32{5, 1}, floor.UV())

	marker := s.Placements[1]
	assert.Equal(t, Sphere, marker.Mesh)
	assert.False(t, marker.Textured())
	assert.Equal(t, [4]float32{1, 0, 0, 1}, marker.FlatColor())
	// UV defaults to no tiling when omitted.
	assert.Equal(t, [2]float32{1, 1}, marker.UV())
}

func TestParseUnknownMeshKind(t *testing.T) {
	_, err := Parse([]byte(`placements: [{ mesh: cone, scale: [1,1,1], position: [0,0,0] }]`))
	assert.ErrorContains(t, err, `unknown mesh kind "cone"`)
}

func TestValidateUnresolvedTags(t *testing.T) {
	_, err := Parse([]byte(`
placements:
  - name: body
    mesh: box
    scale: [1, 1, 1]
    position: [0, 0, 0]
    material: casingMaterial
    texture: casing
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, `texture tag "casing" not declared`)
	assert.ErrorContains(t, err, `material tag "casingMaterial" not declared`)
}

func TestValidateTextureAndColorConflict(t *testing.T) {
	_, err := Parse([]byte(`
textures:
  - { file: solder.png, tag: solder }
placements:
  - name: fillet
    mesh: sphere
    scale: [1, 1, 1]
    position: [0, 0, 0]
    texture: solder
    color: [1, 1, 1, 1]
`))
	assert.ErrorContains(t, err, "both texture and color set")
}

func TestMeshKindRoundTrip(t *testing.T) {
	kinds := []MeshKind{Plane, Box, Sphere, Cylinder, Torus}
	names := []string{"plane", "box", "sphere", "cylinder", "torus"}
	for i, k := range kinds {
		assert.Equal(t, names[i], k.String())
	}
}
