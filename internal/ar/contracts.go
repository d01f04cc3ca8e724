package ar

// Contracts for the external AR runtime. The loader in internal/creature talks only
// to these; internal/scene and internal/model provide the raylib-backed versions,
// and tests provide recording fakes.

// Scene registers and removes materialized models. Once AddObject returns AddOK the
// scene owns the handle and is responsible for its destruction.
type Scene interface {
	AddObject(m Model) (AddStatus, error)
	RemoveObject(m Model) error
}

// ModelLoader materializes a model handle from an asset file on disk.
// It fails when the file is unreadable or not a model the runtime can decode.
type ModelLoader interface {
	LoadFromPath(path string) (Model, error)
}

// Model is an opaque handle to a materialized 3D model instance.
// Optional capabilities (animation, shadows) are separate interfaces the handle
// may or may not implement; callers probe with a type assertion.
type Model interface {
	SetPosition(p Vector3)
	SetRotation(q Quaternion)
	SetScale(s Vector3)
	SetAnchor(a Anchor)
	SetCollider(shape ColliderShape, size Vector3) error
	SetColor(c Color)
}

// Animator is the optional animation capability of a model handle.
type Animator interface {
	SetAnimation(name string) error
}

// ShadowCaster is the optional shadow capability of a model handle.
type ShadowCaster interface {
	EnableShadows()
}

// Anchor binds a model to a detected real-world surface.
type Anchor interface {
	Position() Vector3
}

// AnchorProvider creates spatial anchors. CreateGroundAnchor projects the given
// position onto the detected ground plane; it fails while no plane is tracked.
type AnchorProvider interface {
	CreateGroundAnchor(p Vector3) (Anchor, error)
}
