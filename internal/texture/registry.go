// Package texture loads image files and tracks the GPU textures created from
// them. Each loaded texture is identified by a tag and occupies the texture
// slot matching its load order.
package texture

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"

	"pcb-scene/internal/logger"
)

// MaxSlots is the number of texture slots available, matching the fixed
// texture-unit limit the shader contract assumes.
const MaxSlots = 16

// NotFound is returned by FindHandle and FindSlot when no texture is
// registered under a tag. It is never a valid handle or slot.
const NotFound = -1

// GPU creates and releases device textures. Upload must configure repeat
// wrapping on both axes, linear min/mag filtering, and mipmaps. The opaque
// flag tells backends that distinguish 3-channel from 4-channel storage which
// layout the pixels carry.
type GPU interface {
	Upload(pixels *image.RGBA, opaque bool) (handle int, err error)
	Release(handle int)
}

type entry struct {
	tag    string
	handle int
	// pixels holds the decoded image between Load and Bind; cleared after the
	// GPU upload so the copy is not retained for the process lifetime.
	pixels *image.RGBA
	opaque bool
}

// Registry is the ordered list of loaded textures. Load decodes and stages
// images; Bind uploads them in load order, which fixes the tag-to-slot
// mapping for the rest of the run.
type Registry struct {
	gpu     GPU
	log     *logger.Logger
	entries []entry
}

// NewRegistry returns an empty registry that creates textures through gpu and
// reports load failures through log.
func NewRegistry(gpu GPU, log *logger.Logger) *Registry {
	return &Registry{gpu: gpu, log: log}
}

// Load reads the image file at path, checks that its pixel layout is
// supported (3-channel opaque or 4-channel with alpha), and stages it under
// tag. The tag's slot is its 0-based load order. Failures are logged and
// returned; the caller may continue with the texture absent.
func (r *Registry) Load(path, tag string) error {
	if len(r.entries) >= MaxSlots {
		err := fmt.Errorf("texture %q: all %d slots in use", tag, MaxSlots)
		r.log.Log(err.Error())
		return err
	}
	img, err := imgio.Open(path)
	if err != nil {
		err = fmt.Errorf("texture %q: decode %s: %w", tag, path, err)
		r.log.Log(err.Error())
		return err
	}
	opaque, err := classify(img)
	if err != nil {
		err = fmt.Errorf("texture %q: %s: %w", tag, path, err)
		r.log.Log(err.Error())
		return err
	}
	r.entries = append(r.entries, entry{
		tag:    tag,
		handle: NotFound,
		pixels: clone.AsRGBA(img),
		opaque: opaque,
	})
	return nil
}

// classify maps the decoded image type to the two supported pixel layouts.
// Anything that is not 3-channel color or 4-channel color-with-alpha is
// rejected the same way the loader rejects unsupported channel counts.
func classify(img image.Image) (opaque bool, err error) {
	switch img.(type) {
	case *image.YCbCr:
		return true, nil
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return false, nil
	default:
		return false, fmt.Errorf("unsupported pixel layout %T", img)
	}
}

// Bind uploads every staged texture in load order, assigning slot i to the
// i-th loaded entry. Entries that already have a handle are skipped, so Bind
// is safe to call more than once. An upload failure leaves the entry staged
// and is logged; later slots keep their load-order indices regardless.
func (r *Registry) Bind() {
	for i := range r.entries {
		e := &r.entries[i]
		if e.handle != NotFound || e.pixels == nil {
			continue
		}
		handle, err := r.gpu.Upload(e.pixels, e.opaque)
		if err != nil {
			r.log.Logf("texture %q: upload: %v", e.tag, err)
			continue
		}
		e.handle = handle
		e.pixels = nil
	}
}

// FindHandle returns the GPU handle of the first texture loaded under tag, or
// NotFound if the tag is absent or not yet bound.
func (r *Registry) FindHandle(tag string) int {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.handle
		}
	}
	return NotFound
}

// FindSlot returns the slot index of the first texture loaded under tag, or
// NotFound if the tag is absent.
func (r *Registry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.tag == tag {
			return i
		}
	}
	return NotFound
}

// HandleAt returns the handle bound at slot, or NotFound for an out-of-range
// or unbound slot.
func (r *Registry) HandleAt(slot int) int {
	if slot < 0 || slot >= len(r.entries) {
		return NotFound
	}
	return r.entries[slot].handle
}

// Len returns the number of loaded textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Release frees every texture the registry uploaded, once, and empties the
// registry. Call at teardown.
func (r *Registry) Release() {
	for i := range r.entries {
		if r.entries[i].handle != NotFound {
			r.gpu.Release(r.entries[i].handle)
			r.entries[i].handle = NotFound
		}
	}
	r.entries = nil
}
