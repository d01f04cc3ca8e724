package scene

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"creature-engine/internal/ar"
	"creature-engine/internal/gizmos"
	"creature-engine/internal/physics"
)

const gridSlices = 40
const gridSpacing = 0.5

// defaultShadowRadius is used for models without a collider to size the blob shadow.
const defaultShadowRadius = 0.3

// Object is what the scene can register and render. The handles produced by
// internal/model implement it; AddObject rejects anything else.
type Object interface {
	ar.Model
	ID() uuid.UUID
	Advance(dt float32)
	Draw()
	Destroy()
	Shadows() bool
	Position() ar.Vector3
	Collider() (ar.Vector3, bool)
	Anchored() (ar.Vector3, bool)
}

// groundAnchor is a fixed point on the detected ground plane.
type groundAnchor struct {
	pos ar.Vector3
}

func (a groundAnchor) Position() ar.Vector3 { return a.pos }

// Scene holds the camera and every registered creature, draws the world each
// frame, and doubles as the anchor provider (anchors need its ground plane).
// Registered objects are owned by the scene: RemoveObject destroys them.
type Scene struct {
	Camera        rl.Camera3D
	GridVisible   bool
	ShowColliders bool

	cursorDone bool
	objects    map[uuid.UUID]Object
	order      []uuid.UUID // registration order, for stable drawing
	pick       *physics.World
	groundY    float32
	groundSet  bool
}

// New returns a scene with an eye-level camera looking at the spawn area in
// front of the viewer. Grid is visible by default; no ground plane is tracked
// until SetGroundPlane is called.
func New() *Scene {
	s := &Scene{
		objects:     make(map[uuid.UUID]Object),
		pick:        physics.NewWorld(),
		GridVisible: true,
	}
	s.Camera.Position = rl.NewVector3(0, 1.6, 2)
	s.Camera.Target = rl.NewVector3(0, 0.6, -2)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the ground grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetGroundPlane marks a horizontal plane at height y as detected. Anchoring
// fails until this is called once.
func (s *Scene) SetGroundPlane(y float32) {
	s.groundY = y
	s.groundSet = true
}

// CreateGroundAnchor projects p onto the detected ground plane and returns an
// anchor there. Fails while no plane is tracked.
func (s *Scene) CreateGroundAnchor(p ar.Vector3) (ar.Anchor, error) {
	if !s.groundSet {
		return nil, errors.New("scene: no ground plane tracked yet")
	}
	return groundAnchor{pos: ar.NewVector3(p.X, s.groundY, p.Z)}, nil
}

// AddObject registers a handle. Handles the scene cannot render and duplicate
// registrations are rejected with AddRejected rather than an error.
func (s *Scene) AddObject(m ar.Model) (ar.AddStatus, error) {
	obj, ok := m.(Object)
	if !ok {
		return ar.AddRejected, nil
	}
	if _, dup := s.objects[obj.ID()]; dup {
		return ar.AddRejected, nil
	}
	s.objects[obj.ID()] = obj
	s.order = append(s.order, obj.ID())
	return ar.AddOK, nil
}

// RemoveObject unregisters a handle and destroys it. Fails when the handle is
// not currently registered.
func (s *Scene) RemoveObject(m ar.Model) error {
	obj, ok := m.(Object)
	if !ok {
		return errors.New("scene: not a scene object")
	}
	id := obj.ID()
	if _, exists := s.objects[id]; !exists {
		return fmt.Errorf("scene: object %s not registered", id)
	}
	delete(s.objects, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.pick.Remove(id)
	obj.Destroy()
	return nil
}

// ObjectCount returns how many objects are registered.
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// PickAt casts a ray through the given screen point and returns the nearest
// creature whose collider it hits.
func (s *Scene) PickAt(point rl.Vector2) (Object, bool) {
	ray := rl.GetScreenToWorldRay(point, s.Camera)
	id, ok := s.pick.PickRay(ray)
	if !ok {
		return nil, false
	}
	obj, ok := s.objects[id]
	return obj, ok
}

// Update runs once per frame: captures the cursor for the free camera, steps
// animation playback, and refreshes collider boxes (colliders attach after
// registration, so they are re-read every frame).
func (s *Scene) Update(dt float32) {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)

	for _, id := range s.order {
		obj := s.objects[id]
		obj.Advance(dt)
		if extent, ok := obj.Collider(); ok {
			p := obj.Position()
			s.pick.SetBox(id, rl.NewVector3(p.X, p.Y, p.Z), rl.NewVector3(extent.X, extent.Y, extent.Z))
		}
	}
}

// Draw renders the 3D world: ground grid, registered creatures, then their
// shadows, anchor markers and (optionally) collider wireframes.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)

	if s.GridVisible {
		rl.DrawGrid(gridSlices, gridSpacing)
	}

	for _, id := range s.order {
		obj := s.objects[id]
		obj.Draw()

		if obj.Shadows() {
			p := obj.Position()
			groundY := p.Y
			if s.groundSet {
				groundY = s.groundY
			}
			gizmos.BlobShadow(rl.NewVector3(p.X, p.Y, p.Z), s.shadowRadius(obj), groundY)
		}
		if pos, ok := obj.Anchored(); ok {
			gizmos.AnchorMarker(rl.NewVector3(pos.X, pos.Y, pos.Z))
		}
		if s.ShowColliders {
			if box, ok := s.pick.Box(id); ok {
				gizmos.ColliderBox(box)
			}
		}
	}

	rl.EndMode3D()
}

// shadowRadius sizes the blob shadow from the collider footprint when there is
// one, else a fixed default.
func (s *Scene) shadowRadius(obj Object) float32 {
	extent, ok := obj.Collider()
	if !ok {
		return defaultShadowRadius
	}
	r := extent.X
	if extent.Z > r {
		r = extent.Z
	}
	return r * 0.5
}
