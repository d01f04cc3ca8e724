package ar

import (
	"github.com/chewxy/math32"
)

// Vector3 is a point or direction in scene space (meters, Y up).
// Spawn positions are expressed in the device's spatial coordinate frame.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Uniform returns (s, s, s). Used for uniform scale factors.
func Uniform(s float32) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Scaled returns v with every component multiplied by s.
func (v Vector3) Scaled(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Quaternion is an orientation in scene space.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity returns the identity orientation (no rotation).
// Creatures always spawn facing the canonical forward direction.
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// Color is an RGB tint with components in [0, 1].
type Color struct {
	R, G, B float32
}

// AddStatus is the scene's answer to an add-object request.
type AddStatus int

const (
	// AddOK: the object is registered and the scene now owns it.
	AddOK AddStatus = iota
	// AddRejected: the scene refused the object (e.g. wrong handle type, scene full).
	AddRejected
)

// ColliderShape names a collider geometry. Only boxes are used here.
type ColliderShape string

// ColliderBox is an axis-aligned box collider; size is the full extent per axis.
const ColliderBox ColliderShape = "box"
