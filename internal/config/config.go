package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the viewer config file, relative to the process
// working directory.
const ConfigPath = "config/viewer.json"

// Prefs holds viewer preferences (window, overlays, scene script override).
// Persisted across runs.
type Prefs struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Fullscreen   bool   `json:"fullscreen"`
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	// ScenePath points at an alternative placement script; empty means the
	// built-in PCB scene.
	ScenePath string `json:"scene_path,omitempty"`
}

// Default returns default preferences (windowed 1280x720, overlays off).
func Default() Prefs {
	return Prefs{
		Width:  1280,
		Height: 720,
	}
}

// Load reads preferences from config/viewer.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.Width <= 0 || p.Height <= 0 {
		d := Default()
		p.Width, p.Height = d.Width, d.Height
	}
	return p, nil
}

// Save writes preferences to config/viewer.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
