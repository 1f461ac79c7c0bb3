package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce
	// allocations.
	updateInterval = 30
)

// Debug holds runtime overlays (FPS, heap). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap counter is drawn (top-right, under
// FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders any enabled overlays. Call after the 3D scene in the draw
// loop so text lands on top.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.frameCount++
	refresh := d.frameCount%updateInterval == 1

	y := int32(padding)
	if d.ShowFPS {
		if refresh || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("%d FPS", rl.GetFPS())
		}
		d.drawRightAligned(d.lastFpsText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("%.1f MiB", float64(d.lastMemStats.HeapAlloc)/(1024*1024))
		}
		d.drawRightAligned(d.lastMemText, y, rl.SkyBlue)
	}
}

func (d *Debug) drawRightAligned(text string, y int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	x := int32(rl.GetScreenWidth()) - w - padding
	rl.DrawText(text, x, y, fontSize, color)
}
