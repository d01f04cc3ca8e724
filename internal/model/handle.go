package model

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"creature-engine/internal/ar"
)

// animFPS is the playback rate for model animations (glTF exporters bake 60 fps frames).
const animFPS = 60

// Handle is a materialized raylib model. It implements ar.Model plus the shadow
// capability; animated models are AnimatedHandle. The scene draws and destroys
// handles; nothing else should hold one after registration.
type Handle struct {
	id       uuid.UUID
	model    rl.Model
	position ar.Vector3
	rotation ar.Quaternion
	scale    ar.Vector3
	tint     rl.Color
	anchor   ar.Anchor
	collider ar.Vector3
	hasBox   bool
	shadows  bool
}

func newHandle(m rl.Model) Handle {
	return Handle{
		id:       uuid.New(),
		model:    m,
		rotation: ar.QuaternionIdentity(),
		scale:    ar.Uniform(1),
		tint:     rl.White,
	}
}

// ID returns the instance id the scene registry is keyed by.
func (h *Handle) ID() uuid.UUID { return h.id }

func (h *Handle) SetPosition(p ar.Vector3) { h.position = p }

func (h *Handle) SetRotation(q ar.Quaternion) { h.rotation = q }

func (h *Handle) SetScale(s ar.Vector3) { h.scale = s }

// SetAnchor binds the handle to a spatial anchor and snaps it to the anchored
// ground height. An unanchored handle keeps its raw spawn position.
func (h *Handle) SetAnchor(a ar.Anchor) {
	h.anchor = a
	if a != nil {
		h.position.Y = a.Position().Y
	}
}

// SetCollider attaches an axis-aligned box collider. Only box shapes are
// supported and every extent must be positive.
func (h *Handle) SetCollider(shape ar.ColliderShape, size ar.Vector3) error {
	if shape != ar.ColliderBox {
		return fmt.Errorf("model: unsupported collider shape %q", shape)
	}
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return fmt.Errorf("model: collider extent must be positive, got %v", size)
	}
	h.collider = size
	h.hasBox = true
	return nil
}

// SetColor tints the whole model. Used by the loader for the placeholder warning tint.
func (h *Handle) SetColor(c ar.Color) {
	h.tint = rl.NewColor(colorByte(c.R), colorByte(c.G), colorByte(c.B), 255)
}

func colorByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// EnableShadows turns on the blob shadow drawn under the model.
func (h *Handle) EnableShadows() { h.shadows = true }

// Shadows reports whether a blob shadow should be drawn.
func (h *Handle) Shadows() bool { return h.shadows }

// Position returns the current scene-space position.
func (h *Handle) Position() ar.Vector3 { return h.position }

// Collider returns the box collider extent, if one is attached.
func (h *Handle) Collider() (ar.Vector3, bool) { return h.collider, h.hasBox }

// Anchored returns the anchor position, if the handle is anchored.
func (h *Handle) Anchored() (ar.Vector3, bool) {
	if h.anchor == nil {
		return ar.Vector3{}, false
	}
	return h.anchor.Position(), true
}

// Advance steps animation playback. The base handle has none.
func (h *Handle) Advance(dt float32) {}

// Draw renders the model. Must run between BeginMode3D and EndMode3D.
func (h *Handle) Draw() {
	axis, angle := axisAngle(h.rotation)
	rl.DrawModelEx(h.model,
		rl.NewVector3(h.position.X, h.position.Y, h.position.Z),
		axis, angle,
		rl.NewVector3(h.scale.X, h.scale.Y, h.scale.Z),
		h.tint)
}

// Destroy releases GPU resources. Called by the scene on removal.
func (h *Handle) Destroy() {
	rl.UnloadModel(h.model)
}

// axisAngle converts a quaternion to raylib's axis/angle form (degrees).
// The identity rotation maps to a zero angle around Y.
func axisAngle(q ar.Quaternion) (rl.Vector3, float32) {
	w := q.W
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	angle := 2 * math32.Acos(w)
	s := math32.Sqrt(1 - w*w)
	if s < 1e-4 {
		return rl.NewVector3(0, 1, 0), 0
	}
	axis := rl.NewVector3(q.X/s, q.Y/s, q.Z/s)
	return axis, angle * 180 / math32.Pi
}

// AnimatedHandle is a Handle whose model carries animation clips. It additionally
// implements ar.Animator; clip names come from the glTF document in file order.
type AnimatedHandle struct {
	Handle
	clips []string
	anims []rl.ModelAnimation
	index int
	frame int32
}

// SetAnimation selects the named clip for playback. Unknown names fail.
func (h *AnimatedHandle) SetAnimation(name string) error {
	for i, clip := range h.clips {
		if clip == name && i < len(h.anims) {
			h.index = i
			h.frame = 0
			return nil
		}
	}
	return fmt.Errorf("model: no animation clip %q (have %v)", name, h.clips)
}

// Advance steps the selected clip and poses the model for the next Draw.
func (h *AnimatedHandle) Advance(dt float32) {
	if h.index < 0 {
		return
	}
	anim := h.anims[h.index]
	if anim.FrameCount <= 0 {
		return
	}
	step := int32(dt * animFPS)
	if step < 1 {
		step = 1
	}
	h.frame = (h.frame + step) % anim.FrameCount
	rl.UpdateModelAnimation(h.model, anim, h.frame)
}

// Destroy releases the model and its animation data.
func (h *AnimatedHandle) Destroy() {
	for _, anim := range h.anims {
		rl.UnloadModelAnimation(anim)
	}
	h.Handle.Destroy()
}
