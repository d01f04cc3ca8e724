package archive_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creature-engine/internal/archive"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, body := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestUnzipExtractsModels(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"dragon.glb":        "glTF",
		"extra/phoenix.glb": "glTF",
		"readme.txt":        "notes",
	})
	dest := t.TempDir()

	extracted, err := archive.Unzip(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, extracted, 3)
	assert.FileExists(t, filepath.Join(dest, "dragon.glb"))
	assert.FileExists(t, filepath.Join(dest, "extra", "phoenix.glb"))
}

func TestUnzipSkipsPathEscape(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"../evil.glb": "glTF",
		"ok.glb":      "glTF",
	})
	dest := filepath.Join(t.TempDir(), "out")

	extracted, err := archive.Unzip(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, extracted, 1)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dest), "evil.glb"))
}

func TestFindModelFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"wolf.glb", "cat.gltf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pack"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack", "dragon.glb"), []byte("x"), 0644))

	models, err := archive.FindModelFiles(dir, dir)
	require.NoError(t, err)
	// .glb before .gltf, each group sorted.
	assert.Equal(t, []string{"pack/dragon.glb", "wolf.glb", "cat.gltf"}, models)
}
