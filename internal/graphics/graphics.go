package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pcb-scene/internal/config"
)

// Run starts the window and main loop. Each frame it calls update (camera,
// input), then clears the screen and calls draw. shutdown runs after the loop
// ends, before the GL context goes away, so GPU resources can be released.
func Run(title string, prefs config.Prefs, update, draw, shutdown func()) {
	width, height := int32(prefs.Width), int32(prefs.Height)
	if prefs.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		width = int32(rl.GetMonitorWidth(0))
		height = int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 30, 255))
		draw()
		rl.EndDrawing()
	}

	shutdown()
}
