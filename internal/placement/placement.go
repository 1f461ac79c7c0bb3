// Package placement models the scene description: which primitive mesh each
// instance uses and the transform, material, texture, and UV tiling it is
// drawn with. Scenes are data, loaded from a YAML script.
package placement

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MeshKind selects one of the five primitive meshes.
type MeshKind int

const (
	Plane MeshKind = iota
	Box
	Sphere
	Cylinder
	Torus
)

var meshNames = map[MeshKind]string{
	Plane:    "plane",
	Box:      "box",
	Sphere:   "sphere",
	Cylinder: "cylinder",
	Torus:    "torus",
}

func (k MeshKind) String() string {
	if n, ok := meshNames[k]; ok {
		return n
	}
	return fmt.Sprintf("MeshKind(%d)", int(k))
}

// UnmarshalYAML parses a mesh kind from its lowercase name.
func (k *MeshKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for kind, name := range meshNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown mesh kind %q", s)
}

// MarshalYAML writes the lowercase name.
func (k MeshKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// TextureRef names an image file under the texture directory and the tag it
// is registered under.
type TextureRef struct {
	File string `yaml:"file"`
	Tag  string `yaml:"tag"`
}

// MaterialDef is a named surface definition.
type MaterialDef struct {
	Tag       string     `yaml:"tag"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// Placement is one drawn instance: a primitive mesh with its transform,
// material tag, and either a texture tag or a flat color.
type Placement struct {
	Name     string      `yaml:"name,omitempty"`
	Mesh     MeshKind    `yaml:"mesh"`
	Scale    [3]float32  `yaml:"scale"`
	Rotation [3]float32  `yaml:"rotation,omitempty"` // XYZ Euler, degrees
	Position [3]float32  `yaml:"position"`
	Material string      `yaml:"material,omitempty"`
	Texture  string      `yaml:"texture,omitempty"`
	Color    *[4]float32 `yaml:"color,omitempty"`
	UVScale  *[2]float32 `yaml:"uv,omitempty"`
}

// Textured reports whether the placement draws with a texture rather than a
// flat color.
func (p *Placement) Textured() bool {
	return p.Texture != ""
}

// UV returns the tiling factor, defaulting to (1,1) when the script omits it.
func (p *Placement) UV() [2]float32 {
	if p.UVScale == nil {
		return [2]float32{1, 1}
	}
	return *p.UVScale
}

// FlatColor returns the color for untextured placements, defaulting to opaque
// white.
func (p *Placement) FlatColor() [4]float32 {
	if p.Color == nil {
		return [4]float32{1, 1, 1, 1}
	}
	return *p.Color
}
