package ar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"creature-engine/internal/ar"
)

func TestVector3(t *testing.T) {
	v := ar.NewVector3(3, 0, 4)
	assert.InDelta(t, 5, v.Length(), 1e-6)

	n := v.Normalized()
	assert.InDelta(t, 1, n.Length(), 1e-6)
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Z, 1e-6)

	assert.Equal(t, ar.Vector3{}, ar.Vector3{}.Normalized())
	assert.Equal(t, ar.NewVector3(2, 2, 2), ar.Uniform(1).Scaled(2))
}

func TestQuaternionIdentity(t *testing.T) {
	q := ar.QuaternionIdentity()
	assert.Equal(t, float32(1), q.W)
	assert.Zero(t, q.X)
	assert.Zero(t, q.Y)
	assert.Zero(t, q.Z)
}
