package main

import (
	"os"
	"path/filepath"
	"strings"

	"creature-engine/internal/archive"
	"creature-engine/internal/download"
)

// fetchModelPack downloads the model or pack at url into assetDir. Zip packs are
// extracted into assetDir and the archive removed; single models are saved
// as-is. Returns the model paths relative to assetDir.
func fetchModelPack(url, assetDir string) ([]string, error) {
	saved, err := download.Fetch(url, assetDir)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(saved), ".zip") {
		if _, err := archive.Unzip(saved, assetDir); err != nil {
			return nil, err
		}
		_ = os.Remove(saved)
		return archive.FindModelFiles(assetDir, assetDir)
	}
	rel, err := filepath.Rel(assetDir, saved)
	if err != nil {
		return nil, err
	}
	return []string{filepath.ToSlash(rel)}, nil
}
