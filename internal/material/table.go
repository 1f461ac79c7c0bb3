// Package material holds the catalog of named surface definitions used by the
// scene. Entries are defined once at scene setup and looked up by tag when a
// placement is drawn.
package material

// Material describes how a surface reflects light: diffuse and specular color
// components in [0,1] and a positive shininess exponent.
type Material struct {
	DiffuseColor  [3]float32
	SpecularColor [3]float32
	Shininess     float32
}

// Table is an append-only list of tagged materials. Tags are not checked for
// uniqueness; when duplicates exist, the first-defined entry wins on lookup.
type Table struct {
	entries []entry
}

type entry struct {
	tag string
	mat Material
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Define appends a material under the given tag.
func (t *Table) Define(tag string, diffuse, specular [3]float32, shininess float32) {
	t.entries = append(t.entries, entry{tag: tag, mat: Material{
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	}})
}

// Len returns the number of defined materials.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup scans the table in definition order and copies the first material
// defined under tag into dst.
//
// An empty table is a no-op success: Lookup returns true and leaves dst
// untouched, matching the long-standing behavior callers rely on. A miss on a
// non-empty table returns false and leaves dst untouched, so the caller can
// report it.
func (t *Table) Lookup(tag string, dst *Material) bool {
	if len(t.entries) == 0 {
		return true
	}
	for _, e := range t.entries {
		if e.tag == tag {
			*dst = e.mat
			return true
		}
	}
	return false
}
