package model

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/qmuntal/gltf"

	"creature-engine/internal/ar"
)

// Loader decodes .glb files into handles via raylib. It implements ar.ModelLoader.
// Must run after the window/OpenGL context exists, because raylib uploads meshes
// to the GPU during LoadModel.
type Loader struct{}

// NewLoader returns a model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromPath materializes a handle from the model file at path. Models with
// animation clips come back as an *AnimatedHandle (which adds the ar.Animator
// capability); static models as a plain *Handle.
func (l *Loader) LoadFromPath(path string) (ar.Model, error) {
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		return nil, fmt.Errorf("model: decode %s failed", path)
	}

	clips := clipNames(path)
	if len(clips) == 0 {
		h := newHandle(m)
		return &h, nil
	}
	anims := rl.LoadModelAnimations(path)
	if len(anims) == 0 {
		// Document declares clips raylib could not load; treat as static.
		h := newHandle(m)
		return &h, nil
	}
	return &AnimatedHandle{
		Handle: newHandle(m),
		clips:  clips,
		anims:  anims,
		index:  -1,
	}, nil
}

// clipNames reads the glTF document at path and returns its animation names in
// file order, matching the order raylib loads them in. raylib does not expose
// clip names, so the document is the source of truth for name-to-index mapping.
// Unparseable files yield no clips; the model then simply has no animation
// capability.
func clipNames(path string) []string {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil
	}
	names := make([]string, len(doc.Animations))
	for i, a := range doc.Animations {
		names[i] = a.Name
	}
	return names
}
