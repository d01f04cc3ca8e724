package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Unzip extracts zipPath into destDir, preserving directory structure and
// skipping entries that would escape destDir. destDir is created if needed.
// Returns the extracted file paths.
func Unzip(zipPath, destDir string) (extracted []string, err error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}

	for _, f := range r.File {
		dest := filepath.Clean(filepath.Join(destDir, f.Name))
		absDest, err := filepath.Abs(dest)
		if err != nil {
			return nil, fmt.Errorf("unzip: %w", err)
		}
		if absDest != absDir && !strings.HasPrefix(absDest, absDir+string(os.PathSeparator)) {
			continue // path escape
		}
		if f.FileInfo().IsDir() {
			_ = os.MkdirAll(dest, 0755)
			continue
		}
		if err := extractFile(f, dest); err != nil {
			return nil, err
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	defer out.Close()
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	defer rc.Close()
	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	return nil
}

// FindModelFiles returns paths (relative to baseDir, slash-separated) of .glb
// and .gltf files under dir, sorted with .glb first. baseDir should be the
// asset root (e.g. assets/models).
func FindModelFiles(dir, baseDir string) (relPaths []string, err error) {
	dir = filepath.Clean(dir)
	baseDir = filepath.Clean(baseDir)
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".glb" && ext != ".gltf" {
			return nil
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}
		relPaths = append(relPaths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(relPaths, func(i, j int) bool {
		bi := strings.HasSuffix(relPaths[i], ".glb")
		bj := strings.HasSuffix(relPaths[j], ".glb")
		if bi != bj {
			return bi
		}
		return relPaths[i] < relPaths[j]
	})
	return relPaths, nil
}
