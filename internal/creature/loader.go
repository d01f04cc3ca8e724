package creature

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"creature-engine/internal/ar"
	"creature-engine/internal/diag"
)

// DefaultBaseDir is where creature models are looked up when no base dir is given,
// relative to the working directory (project root when run via go run ./cmd/viewer).
const DefaultBaseDir = "assets/models"

// assetExt is the only model format the runtime decodes.
const assetExt = ".glb"

// fallbackModelFile is the placeholder shown when a creature cannot be loaded.
const fallbackModelFile = "fallback_cube.glb"

// fallbackScale is smaller than any creature default so a placeholder is
// recognizable at a glance.
const fallbackScale = 0.3

// fallbackTint is the warning color applied to the placeholder.
var fallbackTint = ar.Color{R: 1}

// Loader materializes creature models into an AR scene. It owns the creature
// catalog and the load/fallback/unload pipeline; rendering, decoding and anchoring
// belong to the injected collaborators. Not safe for concurrent loads; the viewer
// drives it from its frame loop.
type Loader struct {
	scene   ar.Scene
	models  ar.ModelLoader
	anchors ar.AnchorProvider
	sink    diag.Sink
	baseDir string
	catalog map[string]Config
}

// Options configures a Loader beyond its two required collaborators.
// Zero values mean: DefaultBaseDir, no catalog file, no anchoring, discard events.
type Options struct {
	BaseDir     string
	CatalogPath string // optional YAML overlay for the built-in table
	Anchors     ar.AnchorProvider
	Sink        diag.Sink
}

// NewLoader returns a loader bound to the given scene and model loader. The
// catalog is built here and is read-only afterwards. The only error case is a
// configured catalog file that cannot be read or parsed.
func NewLoader(scene ar.Scene, models ar.ModelLoader, opts Options) (*Loader, error) {
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	catalog := builtinCatalog()
	if opts.CatalogPath != "" {
		if err := mergeCatalogFile(catalog, opts.CatalogPath); err != nil {
			return nil, err
		}
	}
	return &Loader{
		scene:   scene,
		models:  models,
		anchors: opts.Anchors,
		sink:    opts.Sink,
		baseDir: baseDir,
		catalog: catalog,
	}, nil
}

// emit sends an event to the sink, if any.
func (l *Loader) emit(level diag.Level, code, format string, args ...any) {
	if l.sink == nil {
		return
	}
	l.sink.Emit(diag.Event{Level: level, Code: code, Message: fmt.Sprintf(format, args...)})
}

// ResolvePath joins the base asset dir and a relative model path. No validation
// happens here; a malformed input yields a path ValidateAsset will reject.
func (l *Loader) ResolvePath(rel string) string {
	return filepath.Join(l.baseDir, rel)
}

// ValidateAsset reports whether path names an existing regular file with the
// model extension. Content correctness is the model loader's problem.
func (l *Loader) ValidateAsset(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		l.emit(diag.Error, "asset_missing", "model file not found: %s", path)
		return false
	}
	if !strings.EqualFold(filepath.Ext(path), assetExt) {
		l.emit(diag.Error, "asset_bad_ext", "unsupported model format: %s", path)
		return false
	}
	return true
}

// SpawnOptions are the per-call overrides for LoadCreature.
// Scale 0 and Animation "" mean "use the catalog defaults".
type SpawnOptions struct {
	Scale     float32
	Animation string
}

// LoadCreature materializes the creature with the given id at spawn and registers
// it with the scene. Unknown ids, missing/invalid assets and decode failures fall
// back to the placeholder model; a scene registration failure after the real model
// was materialized fails hard with no fallback. The returned handle is owned by
// the scene; pass it to UnloadCreature to remove it.
func (l *Loader) LoadCreature(id string, spawn ar.Vector3, opts SpawnOptions) (ar.Model, error) {
	l.emit(diag.Info, "load_requested", "loading creature %q", id)

	cfg, ok := l.catalog[id]
	if !ok {
		l.emit(diag.Error, "config_missing", "no catalog entry for %q", id)
		return l.loadFallback(spawn)
	}

	path := l.ResolvePath(cfg.ModelPath)
	if !l.ValidateAsset(path) {
		return l.loadFallback(spawn)
	}

	model, err := l.models.LoadFromPath(path)
	if err != nil {
		l.emit(diag.Error, "model_load_failed", "decode %s: %v", path, err)
		return l.loadFallback(spawn)
	}
	l.emit(diag.Info, "model_loaded", "loaded %s", path)

	l.configure(model, cfg, spawn, opts)

	status, err := l.scene.AddObject(model)
	if err != nil {
		l.emit(diag.Error, "scene_add_failed", "add %q to scene: %v", id, err)
		return nil, fmt.Errorf("load creature %q: add to scene: %w", id, err)
	}
	if status != ar.AddOK {
		l.emit(diag.Error, "scene_add_failed", "scene rejected %q (status %d)", id, status)
		return nil, fmt.Errorf("load creature %q: scene rejected object", id)
	}
	l.emit(diag.Info, "scene_added", "creature %q in scene", id)

	l.postLoadSetup(model, cfg)
	return model, nil
}

// configure applies position, orientation, scale, ground anchor and animation to a
// freshly materialized handle, before scene registration. Anchor and animation are
// best-effort: their failures are logged and the load continues.
func (l *Loader) configure(model ar.Model, cfg Config, spawn ar.Vector3, opts SpawnOptions) {
	model.SetPosition(spawn)
	model.SetRotation(ar.QuaternionIdentity())

	scale := cfg.DefaultScale
	if opts.Scale > 0 {
		scale = opts.Scale
	}
	model.SetScale(ar.Uniform(scale))

	if l.anchors != nil {
		anchor, err := l.anchors.CreateGroundAnchor(spawn)
		if err != nil {
			l.emit(diag.Warn, "anchor_failed", "ground anchor at %v: %v", spawn, err)
		} else {
			model.SetAnchor(anchor)
			l.emit(diag.Info, "anchored", "creature anchored to ground plane")
		}
	}

	animation := cfg.DefaultAnimation
	if opts.Animation != "" {
		animation = opts.Animation
	}
	if animation == "" {
		return
	}
	if animator, ok := model.(ar.Animator); ok {
		if err := animator.SetAnimation(animation); err != nil {
			l.emit(diag.Warn, "animation_failed", "play %q: %v", animation, err)
		} else {
			l.emit(diag.Info, "animation_set", "playing %q", animation)
		}
	}
}

// postLoadSetup runs only after successful scene registration: shadows if the
// catalog asks for them and the handle can cast them, then the box collider.
// Neither can fail the load.
func (l *Loader) postLoadSetup(model ar.Model, cfg Config) {
	if cfg.ShadowEnabled {
		if caster, ok := model.(ar.ShadowCaster); ok {
			caster.EnableShadows()
			l.emit(diag.Info, "shadow_enabled", "shadow rendering on")
		}
	}
	if err := model.SetCollider(ar.ColliderBox, cfg.ColliderSize); err != nil {
		l.emit(diag.Warn, "collider_failed", "box collider %v: %v", cfg.ColliderSize, err)
	} else {
		l.emit(diag.Info, "collider_set", "box collider %v", cfg.ColliderSize)
	}
}

// loadFallback shows the placeholder model at spawn: reduced scale, warning tint,
// no anchor, animation, shadow or collider. When the placeholder itself is missing
// or cannot be placed, the whole load fails.
func (l *Loader) loadFallback(spawn ar.Vector3) (ar.Model, error) {
	l.emit(diag.Warn, "fallback_used", "loading placeholder model")

	path := l.ResolvePath(fallbackModelFile)
	if _, err := os.Stat(path); err != nil {
		l.emit(diag.Error, "fallback_missing", "placeholder not found: %s", path)
		return nil, fmt.Errorf("fallback model %s: %w", path, err)
	}

	model, err := l.models.LoadFromPath(path)
	if err != nil {
		l.emit(diag.Error, "fallback_failed", "decode %s: %v", path, err)
		return nil, fmt.Errorf("fallback model %s: %w", path, err)
	}
	model.SetPosition(spawn)
	model.SetScale(ar.Uniform(fallbackScale))
	model.SetColor(fallbackTint)

	status, err := l.scene.AddObject(model)
	if err != nil {
		l.emit(diag.Error, "fallback_failed", "add placeholder to scene: %v", err)
		return nil, fmt.Errorf("fallback model: add to scene: %w", err)
	}
	if status != ar.AddOK {
		l.emit(diag.Error, "fallback_failed", "scene rejected placeholder (status %d)", status)
		return nil, fmt.Errorf("fallback model: scene rejected object")
	}
	return model, nil
}

// UnloadCreature removes a previously loaded handle from the scene. Best-effort:
// removal failures are logged and never reach the caller.
func (l *Loader) UnloadCreature(model ar.Model) {
	if model == nil {
		return
	}
	if err := l.scene.RemoveObject(model); err != nil {
		l.emit(diag.Error, "unload_failed", "remove from scene: %v", err)
		return
	}
	l.emit(diag.Info, "unloaded", "creature removed from scene")
}

// GetCreatureConfig returns the catalog entry for id, if any.
func (l *Loader) GetCreatureConfig(id string) (Config, bool) {
	cfg, ok := l.catalog[id]
	return cfg, ok
}

// ListAvailableCreatures returns all catalog ids, sorted.
func (l *Loader) ListAvailableCreatures() []string {
	ids := make([]string, 0, len(l.catalog))
	for id := range l.catalog {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
