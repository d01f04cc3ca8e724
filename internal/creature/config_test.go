package creature_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creature-engine/internal/ar"
	"creature-engine/internal/creature"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creatures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestCatalogOverridesKnownCreature(t *testing.T) {
	path := writeCatalog(t, `
creatures:
  - id: cat
    scale: 0.5
    animation: stretch
`)
	l, err := creature.NewLoader(&fakeScene{}, &fakeModels{}, creature.Options{CatalogPath: path})
	require.NoError(t, err)

	cfg, ok := l.GetCreatureConfig("cat")
	require.True(t, ok)
	assert.Equal(t, float32(0.5), cfg.DefaultScale)
	assert.Equal(t, "stretch", cfg.DefaultAnimation)
	// Untouched fields keep the built-in values.
	assert.Equal(t, "cat.glb", cfg.ModelPath)
	assert.True(t, cfg.ShadowEnabled)
	assert.Equal(t, ar.NewVector3(0.6, 0.6, 0.6), cfg.ColliderSize)
}

func TestCatalogAddsNewCreature(t *testing.T) {
	path := writeCatalog(t, `
creatures:
  - id: phoenix
    model: phoenix.glb
    scale: 1.1
    animation: soar
    rare: true
    shadow: false
    collider: [1.4, 1.8, 1.4]
`)
	l, err := creature.NewLoader(&fakeScene{}, &fakeModels{}, creature.Options{CatalogPath: path})
	require.NoError(t, err)

	cfg, ok := l.GetCreatureConfig("phoenix")
	require.True(t, ok)
	assert.Equal(t, "phoenix.glb", cfg.ModelPath)
	assert.Equal(t, float32(1.1), cfg.DefaultScale)
	assert.Equal(t, "soar", cfg.DefaultAnimation)
	assert.True(t, cfg.Rare)
	assert.False(t, cfg.ShadowEnabled)
	assert.Equal(t, ar.NewVector3(1.4, 1.8, 1.4), cfg.ColliderSize)

	assert.Contains(t, l.ListAvailableCreatures(), "phoenix")
	assert.Len(t, l.ListAvailableCreatures(), 5)
}

func TestCatalogNewCreatureBareEntry(t *testing.T) {
	// A new entry with only id and model gets the record defaults: it must not
	// inherit scale 0 (invisible) or an empty animation.
	path := writeCatalog(t, `
creatures:
  - id: slime
    model: slime.glb
`)
	l, err := creature.NewLoader(&fakeScene{}, &fakeModels{}, creature.Options{CatalogPath: path})
	require.NoError(t, err)

	cfg, ok := l.GetCreatureConfig("slime")
	require.True(t, ok)
	assert.Equal(t, float32(0.5), cfg.DefaultScale)
	assert.Equal(t, "idle", cfg.DefaultAnimation)
	assert.False(t, cfg.Rare)
	assert.True(t, cfg.ShadowEnabled)
	assert.Equal(t, ar.NewVector3(1, 1, 1), cfg.ColliderSize)
}

func TestCatalogCanDisableShadow(t *testing.T) {
	path := writeCatalog(t, `
creatures:
  - id: dragon
    shadow: false
`)
	l, err := creature.NewLoader(&fakeScene{}, &fakeModels{}, creature.Options{CatalogPath: path})
	require.NoError(t, err)

	cfg, _ := l.GetCreatureConfig("dragon")
	assert.False(t, cfg.ShadowEnabled)
	assert.True(t, cfg.Rare, "other flags untouched")
}

func TestCatalogRejectsBadEntries(t *testing.T) {
	for name, body := range map[string]string{
		"missing id":       "creatures:\n  - model: ghost.glb\n",
		"new without model": "creatures:\n  - id: ghost\n",
		"short collider":   "creatures:\n  - id: cat\n    collider: [1, 2]\n",
		"not yaml":         "creatures: [",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeCatalog(t, body)
			_, err := creature.NewLoader(&fakeScene{}, &fakeModels{}, creature.Options{CatalogPath: path})
			assert.Error(t, err)
		})
	}
}

func TestCatalogFileMissing(t *testing.T) {
	_, err := creature.NewLoader(&fakeScene{}, &fakeModels{}, creature.Options{
		CatalogPath: filepath.Join(t.TempDir(), "absent.yaml"),
	})
	assert.Error(t, err)
}
