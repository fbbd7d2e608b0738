package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/modeller.json"

// Prefs holds editor preferences persisted across runs: overlay visibility, the grid,
// and the starting camera pose. Scene content is deliberately not persisted.
type Prefs struct {
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	GridVisible  bool    `json:"grid_visible"`
	CameraTheta  float32 `json:"camera_theta"`
	CameraPhi    float32 `json:"camera_phi"`
}

// Default returns the out-of-the-box preferences: overlays off, grid on, camera
// tilted -25° about X for a slightly raised starting view.
func Default() Prefs {
	return Prefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		CameraTheta:  -25,
		CameraPhi:    0,
	}
}

// Load reads preferences from Path. A missing or invalid file yields Default()
// without creating anything.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to Path, creating the config directory if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(Path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
