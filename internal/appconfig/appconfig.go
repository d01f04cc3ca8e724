package appconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ViewerConfigPath is the path to the viewer config file, relative to the process
// working directory.
const ViewerConfigPath = "config/viewer.json"

// ViewerPrefs holds viewer-only preferences (overlays, grid, asset locations).
// Persisted across runs; the creature catalog itself lives in the catalog file.
type ViewerPrefs struct {
	ShowFPS       bool   `json:"show_fps"`
	ShowMemAlloc  bool   `json:"show_memalloc"`
	ShowObjects   bool   `json:"show_objects"`
	GridVisible   bool   `json:"grid_visible"`
	ShowColliders bool   `json:"show_colliders"`
	AssetDir      string `json:"asset_dir,omitempty"`
	CatalogPath   string `json:"catalog_path,omitempty"`
}

// Default returns default viewer preferences (overlays off, grid on, built-in
// asset dir and catalog).
func Default() ViewerPrefs {
	return ViewerPrefs{
		GridVisible: true,
		ShowObjects: true,
	}
}

// Load reads viewer preferences from config/viewer.json. If the file is missing
// or invalid, returns Default() and does not create a file.
func Load() (ViewerPrefs, error) {
	return LoadFrom(ViewerConfigPath)
}

// LoadFrom reads viewer preferences from the given path with the same
// missing-or-invalid-means-defaults behavior as Load.
func LoadFrom(path string) (ViewerPrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	var p ViewerPrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes viewer preferences to config/viewer.json, creating the config
// directory if needed.
func Save(p ViewerPrefs) error {
	return SaveTo(ViewerConfigPath, p)
}

// SaveTo writes viewer preferences to the given path.
func SaveTo(path string, p ViewerPrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
