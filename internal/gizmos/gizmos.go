package gizmos

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay drawing for registered creatures: blob shadows, collider wireframes,
// anchor markers. Everything here must run between BeginMode3D and EndMode3D.

const (
	shadowLift    = 0.01 // above the ground plane to avoid z-fighting
	shadowHeight  = 0.005
	shadowSlices  = 24
	shadowAlpha   = 0.35
	anchorRadius  = 0.12
	anchorPostLen = 0.25
)

var colliderColor = rl.NewColor(80, 220, 80, 200)

// BlobShadow draws a flat dark disc under a model. radius should roughly match
// the model footprint; groundY is the detected plane height.
func BlobShadow(center rl.Vector3, radius, groundY float32) {
	if radius <= 0 {
		return
	}
	pos := rl.NewVector3(center.X, groundY+shadowLift, center.Z)
	rl.DrawCylinder(pos, radius, radius, shadowHeight, shadowSlices, rl.Fade(rl.Black, shadowAlpha))
}

// ColliderBox draws the wireframe of a collider AABB.
func ColliderBox(box rl.BoundingBox) {
	rl.DrawBoundingBox(box, colliderColor)
}

// AnchorMarker draws a ground-plane circle with a short post at an anchor position.
func AnchorMarker(pos rl.Vector3) {
	rl.DrawCircle3D(pos, anchorRadius, rl.NewVector3(1, 0, 0), 90, rl.SkyBlue)
	top := rl.NewVector3(pos.X, pos.Y+anchorPostLen, pos.Z)
	rl.DrawLine3D(pos, top, rl.SkyBlue)
}
