package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupEmptyTable(t *testing.T) {
	tbl := NewTable()
	var m Material
	// Empty table reports success and must not fabricate a material.
	assert.True(t, tbl.Lookup("solderMaterial", &m))
	assert.Equal(t, Material{}, m)
}

func TestDefineLookupRoundTrip(t *testing.T) {
	tbl := NewTable()
	tbl.Define("solderMaterial", [3]float32{0.70, 0.70, 0.70}, [3]float32{0.90, 0.90, 0.90}, 16)

	var m Material
	assert.True(t, tbl.Lookup("solderMaterial", &m))
	assert.Equal(t, [3]float32{0.70, 0.70, 0.70}, m.DiffuseColor)
	assert.Equal(t, [3]float32{0.90, 0.90, 0.90}, m.SpecularColor)
	assert.Equal(t, float32(16), m.Shininess)
}

func TestLookupMissOnNonEmptyTable(t *testing.T) {
	tbl := NewTable()
	tbl.Define("fr4Material", [3]float32{0.35, 0.45, 0.30}, [3]float32{0.05, 0.05, 0.05}, 2)

	m := Material{Shininess: 99}
	assert.False(t, tbl.Lookup("copperMaterial", &m))
	// dst is left untouched on a miss.
	assert.Equal(t, float32(99), m.Shininess)
}

func TestFirstDefinedWins(t *testing.T) {
	tbl := NewTable()
	tbl.Define("copperMaterial", [3]float32{0.70, 0.40, 0.30}, [3]float32{0.80, 0.50, 0.40}, 12)
	tbl.Define("copperMaterial", [3]float32{1, 0, 0}, [3]float32{1, 0, 0}, 1)

	var m Material
	assert.True(t, tbl.Lookup("copperMaterial", &m))
	assert.Equal(t, [3]float32{0.70, 0.40, 0.30}, m.DiffuseColor)
	assert.Equal(t, float32(12), m.Shininess)
}
