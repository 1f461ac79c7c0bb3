package main

import (
	"pcb-scene/internal/config"
	"pcb-scene/internal/debug"
	"pcb-scene/internal/graphics"
	"pcb-scene/internal/logger"
	"pcb-scene/internal/scene"
)

func main() {
	log := logger.New()
	prefs, _ := config.Load()

	scn := scene.New(prefs, log)
	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	draw := func() {
		scn.Draw()
		dbg.Draw()
	}
	graphics.Run("PCB assembly", prefs, scn.Update, draw, scn.Close)
}
