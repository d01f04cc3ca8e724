package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// World indexes the box colliders of scene objects so rays (e.g. from a tap or
// mouse click) can pick a creature. Boxes are axis-aligned; the collider extent
// is the full size per axis, centered on the object position.
type World struct {
	boxes map[uuid.UUID]rl.BoundingBox
}

// NewWorld returns an empty collider world.
func NewWorld() *World {
	return &World{boxes: make(map[uuid.UUID]rl.BoundingBox)}
}

// BoxAround returns the AABB centered at center with the given full extent.
// Zero extents fall back to 1 so a degenerate collider is still pickable.
func BoxAround(center, extent rl.Vector3) rl.BoundingBox {
	ex, ey, ez := extent.X, extent.Y, extent.Z
	if ex == 0 {
		ex = 1
	}
	if ey == 0 {
		ey = 1
	}
	if ez == 0 {
		ez = 1
	}
	half := rl.NewVector3(ex*0.5, ey*0.5, ez*0.5)
	return rl.NewBoundingBox(
		rl.NewVector3(center.X-half.X, center.Y-half.Y, center.Z-half.Z),
		rl.NewVector3(center.X+half.X, center.Y+half.Y, center.Z+half.Z),
	)
}

// SetBox adds or updates the collider box for id.
func (w *World) SetBox(id uuid.UUID, center, extent rl.Vector3) {
	w.boxes[id] = BoxAround(center, extent)
}

// Box returns the collider box for id, if present.
func (w *World) Box(id uuid.UUID) (rl.BoundingBox, bool) {
	box, ok := w.boxes[id]
	return box, ok
}

// Remove drops the collider for id. Unknown ids are ignored.
func (w *World) Remove(id uuid.UUID) {
	delete(w.boxes, id)
}

// Count returns the number of tracked colliders.
func (w *World) Count() int {
	return len(w.boxes)
}

// PickRay returns the id of the nearest collider the ray hits.
func (w *World) PickRay(ray rl.Ray) (uuid.UUID, bool) {
	var best uuid.UUID
	bestDist := float32(0)
	hit := false
	for id, box := range w.boxes {
		c := rl.GetRayCollisionBox(ray, box)
		if !c.Hit {
			continue
		}
		if !hit || c.Distance < bestDist {
			best = id
			bestDist = c.Distance
			hit = true
		}
	}
	return best, hit
}
