package shading

import (
	"pcb-scene/internal/logger"
	"pcb-scene/internal/material"
	"pcb-scene/internal/texture"
	"pcb-scene/internal/transform"
)

// State is the full uniform state one drawn instance needs. Applying a State
// atomically replaces everything the previous instance set, so no draw
// depends on leftover uniform values by accident.
type State struct {
	Transform  transform.Mat4
	UseTexture bool
	Texture    string     // texture tag, when UseTexture
	Color      [4]float32 // flat RGBA, when not
	UVScale    [2]float32
	Material   string // material tag
}

// Binder resolves material and texture tags and pushes draw state into the
// shader program.
type Binder struct {
	prog      Program
	textures  *texture.Registry
	materials *material.Table
	log       *logger.Logger
}

// NewBinder returns a binder over the given program and lookup tables.
func NewBinder(prog Program, textures *texture.Registry, materials *material.Table, log *logger.Logger) *Binder {
	return &Binder{prog: prog, textures: textures, materials: materials, log: log}
}

// Apply uploads the complete draw state for one instance.
func (b *Binder) Apply(s State) {
	b.SetTransform(s.Transform)
	if s.UseTexture {
		b.SetTexture(s.Texture)
	} else {
		b.SetSolidColor(s.Color[0], s.Color[1], s.Color[2], s.Color[3])
	}
	b.SetUVScale(s.UVScale[0], s.UVScale[1])
	b.SetMaterial(s.Material)
}

// SetTransform uploads the composed model matrix.
func (b *Binder) SetTransform(m transform.Mat4) {
	b.prog.SetMat4(UniformModel, m)
}

// SetSolidColor disables texturing for the next draw and uploads a flat RGBA
// color.
func (b *Binder) SetSolidColor(r, g, bl, a float32) {
	b.prog.SetBool(UniformUseTexture, false)
	b.prog.SetVec4(UniformObjectColor, [4]float32{r, g, bl, a})
}

// SetTexture enables texturing for the next draw and binds the slot the tag's
// texture was loaded into. An unknown tag is logged and uploads the not-found
// sentinel, which samples an undefined unit; rendering continues degraded.
func (b *Binder) SetTexture(tag string) {
	b.prog.SetBool(UniformUseTexture, true)
	slot := b.textures.FindSlot(tag)
	if slot == texture.NotFound {
		b.log.Logf("texture %q: no slot, drawing with undefined sampler", tag)
	}
	b.prog.SetSampler(UniformTexture, slot)
}

// SetUVScale uploads the texture-coordinate tiling factor.
func (b *Binder) SetUVScale(u, v float32) {
	b.prog.SetVec2(UniformUVScale, u, v)
}

// SetMaterial looks the tag up and uploads diffuse color, specular color, and
// shininess. With no materials defined at all this is a no-op. A miss on a
// populated table is logged and leaves the previously uploaded material in
// place, so the instance inherits its predecessor's surface.
func (b *Binder) SetMaterial(tag string) {
	if b.materials.Len() == 0 {
		return
	}
	var m material.Material
	if !b.materials.Lookup(tag, &m) {
		b.log.Logf("material %q: not defined, previous material persists", tag)
		return
	}
	b.prog.SetVec3("material.diffuseColor", m.DiffuseColor)
	b.prog.SetVec3("material.specularColor", m.SpecularColor)
	b.prog.SetFloat("material.shininess", m.Shininess)
}
