package appconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creature-engine/internal/appconfig"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	p, err := appconfig.LoadFrom(filepath.Join(t.TempDir(), "viewer.json"))
	require.NoError(t, err)
	assert.Equal(t, appconfig.Default(), p)
	assert.True(t, p.GridVisible)
	assert.False(t, p.ShowFPS)
}

func TestLoadInvalidReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	p, err := appconfig.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, appconfig.Default(), p)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.json")
	want := appconfig.ViewerPrefs{
		ShowFPS:       true,
		ShowObjects:   true,
		GridVisible:   true,
		ShowColliders: true,
		AssetDir:      "packs/models",
		CatalogPath:   "packs/creatures.yaml",
	}
	require.NoError(t, appconfig.SaveTo(path, want))

	got, err := appconfig.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
