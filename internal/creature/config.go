package creature

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"creature-engine/internal/ar"
)

// Config holds the presentation defaults for one creature kind. Entries are built
// once when the loader is constructed and never change afterwards.
type Config struct {
	ID               string
	ModelPath        string // relative to the loader's base asset dir
	DefaultScale     float32
	DefaultAnimation string
	// Rare marks the creature as a rare spawn. Stored for callers (e.g. the viewer
	// overlay); no loading decision depends on it.
	Rare          bool
	ShadowEnabled bool
	ColliderSize  ar.Vector3 // full box extent per axis
}

// builtinCatalog returns the built-in creature table. A catalog file can add
// entries or override fields (see mergeCatalogFile); the table is data, and the
// load algorithm never special-cases an entry.
func builtinCatalog() map[string]Config {
	return map[string]Config{
		"dragon": {
			ID:               "dragon",
			ModelPath:        "dragon.glb",
			DefaultScale:     0.8,
			DefaultAnimation: "idle",
			Rare:             true,
			ShadowEnabled:    true,
			ColliderSize:     ar.NewVector3(1.2, 1.2, 1.2),
		},
		"pikachu": {
			ID:               "pikachu",
			ModelPath:        "pikachu.glb",
			DefaultScale:     0.4,
			DefaultAnimation: "idle",
			ShadowEnabled:    true,
			ColliderSize:     ar.NewVector3(0.8, 0.8, 0.8),
		},
		"cat": {
			ID:               "cat",
			ModelPath:        "cat.glb",
			DefaultScale:     0.3,
			DefaultAnimation: "sit",
			ShadowEnabled:    true,
			ColliderSize:     ar.NewVector3(0.6, 0.6, 0.6),
		},
		"wolf": {
			ID:               "wolf",
			ModelPath:        "wolf.glb",
			DefaultScale:     0.6,
			DefaultAnimation: "howl",
			Rare:             true,
			ShadowEnabled:    true,
			ColliderSize:     ar.NewVector3(1.0, 1.0, 1.0),
		},
	}
}

// catalogEntry is one creature record in a catalog YAML file. Scalar zero values
// and nil booleans keep the built-in defaults for that field; Collider is the box
// extent as [x, y, z].
type catalogEntry struct {
	ID               string    `yaml:"id"`
	ModelPath        string    `yaml:"model"`
	DefaultScale     float32   `yaml:"scale"`
	DefaultAnimation string    `yaml:"animation"`
	Rare             *bool     `yaml:"rare"`
	ShadowEnabled    *bool     `yaml:"shadow"`
	Collider         []float32 `yaml:"collider"`
}

// catalogFile is the top-level shape of a catalog YAML file.
type catalogFile struct {
	Creatures []catalogEntry `yaml:"creatures"`
}

// mergeCatalogFile reads the YAML file at path and overlays its entries on the
// catalog. Known ids are merged field-by-field (empty fields keep the built-in
// values, copier.IgnoreEmpty); unknown ids become new entries and need at least a
// model path.
func mergeCatalogFile(catalog map[string]Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	for _, e := range file.Creatures {
		if e.ID == "" {
			return fmt.Errorf("catalog: %s: entry without id", path)
		}
		base, known := catalog[e.ID]
		if !known {
			if e.ModelPath == "" {
				return fmt.Errorf("catalog: %s: new creature %q has no model", path, e.ID)
			}
			// Record defaults for fields a new entry omits; scale must never
			// end up 0 or the creature would spawn invisible.
			base = Config{
				ID:               e.ID,
				DefaultScale:     0.5,
				DefaultAnimation: "idle",
				ShadowEnabled:    true,
				ColliderSize:     ar.NewVector3(1, 1, 1),
			}
		}
		if err := copier.CopyWithOption(&base, &e, copier.Option{IgnoreEmpty: true}); err != nil {
			return fmt.Errorf("catalog: merge %q: %w", e.ID, err)
		}
		base.ID = e.ID
		if len(e.Collider) == 3 {
			base.ColliderSize = ar.NewVector3(e.Collider[0], e.Collider[1], e.Collider[2])
		} else if len(e.Collider) != 0 {
			return fmt.Errorf("catalog: %s: creature %q collider needs 3 values, got %d", path, e.ID, len(e.Collider))
		}
		catalog[e.ID] = base
	}
	return nil
}
