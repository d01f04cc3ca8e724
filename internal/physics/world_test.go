package physics_test

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creature-engine/internal/physics"
)

func TestBoxAround(t *testing.T) {
	box := physics.BoxAround(rl.NewVector3(1, 2, 3), rl.NewVector3(2, 4, 6))
	assert.Equal(t, rl.NewVector3(0, 0, 0), box.Min)
	assert.Equal(t, rl.NewVector3(2, 4, 6), box.Max)

	// Zero extents fall back to 1 per axis.
	box = physics.BoxAround(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, 0))
	assert.Equal(t, rl.NewVector3(-0.5, -0.5, -0.5), box.Min)
}

func TestPickRayNearest(t *testing.T) {
	w := physics.NewWorld()
	near := uuid.New()
	far := uuid.New()
	w.SetBox(near, rl.NewVector3(0, 0, -2), rl.NewVector3(1, 1, 1))
	w.SetBox(far, rl.NewVector3(0, 0, -5), rl.NewVector3(1, 1, 1))
	require.Equal(t, 2, w.Count())

	ray := rl.NewRay(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, -1))
	id, ok := w.PickRay(ray)
	require.True(t, ok)
	assert.Equal(t, near, id)

	// A ray pointing away hits nothing.
	_, ok = w.PickRay(rl.NewRay(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, 1)))
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	w := physics.NewWorld()
	id := uuid.New()
	w.SetBox(id, rl.NewVector3(0, 0, -2), rl.NewVector3(1, 1, 1))
	w.Remove(id)
	assert.Zero(t, w.Count())
	_, ok := w.Box(id)
	assert.False(t, ok)
}
