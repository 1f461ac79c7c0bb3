package texture

import (
	"fmt"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibGPU creates raylib textures. It must only be used after the window
// and GL context exist; the registry's staged Load/deferred Bind split exists
// so decoding can happen earlier.
type RaylibGPU struct {
	textures map[int]rl.Texture2D
}

// NewRaylibGPU returns a GPU backed by the raylib context.
func NewRaylibGPU() *RaylibGPU {
	return &RaylibGPU{textures: make(map[int]rl.Texture2D)}
}

// Upload creates a texture from the decoded pixels with repeat wrapping,
// linear filtering, and mipmaps. raylib stores RGBA regardless of the source
// layout, so opaque only matters to backends with distinct 3-channel storage.
func (g *RaylibGPU) Upload(pixels *image.RGBA, _ bool) (int, error) {
	img := rl.NewImageFromImage(pixels)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(tex) {
		return NotFound, fmt.Errorf("context rejected %dx%d image", pixels.Rect.Dx(), pixels.Rect.Dy())
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	g.textures[int(tex.ID)] = tex
	return int(tex.ID), nil
}

// Release unloads the texture for handle if it is still held.
func (g *RaylibGPU) Release(handle int) {
	tex, ok := g.textures[handle]
	if !ok {
		return
	}
	rl.UnloadTexture(tex)
	delete(g.textures, handle)
}

// Texture returns the raylib texture for handle, used when binding a sampler
// uniform at draw time.
func (g *RaylibGPU) Texture(handle int) (rl.Texture2D, bool) {
	tex, ok := g.textures[handle]
	return tex, ok
}
