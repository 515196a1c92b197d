// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides damped orbit controls for a [scene.Camera]:
// dragging rotates the camera around a target, panning moves the
// target in the view plane, and the wheel dollies toward the target.
package orbit

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/planets/scene"
)

// Buttons are the pointer buttons that drive the controls.
type Buttons int32

const (
	// NoButton means no button is pressed.
	NoButton Buttons = iota

	// Left button rotates.
	Left

	// Middle button pans.
	Middle

	// Right button pans.
	Right
)

// minPolar is the smallest polar angle from the up axis, keeping the
// camera off the poles where LookAt is undefined. It is large enough
// to survive a float32 round trip through the camera position.
const minPolar = 1e-3

// Controls is an orbit controller bound to a camera. Input methods
// accumulate pending motion; [Controls.Update] applies it to the
// camera and must be called once per frame before rendering.
type Controls struct {

	// Camera is the camera that is moved.
	Camera *scene.Camera

	// Target is the point the camera orbits around.
	Target math32.Vector3

	// EnableDamping makes motion continue and decay after input stops.
	EnableDamping bool

	// DampingFactor is the fraction of pending motion applied per
	// update when damping is enabled.
	DampingFactor float32

	// RotateSpeed scales rotation.
	RotateSpeed float32

	// ZoomSpeed scales dolly steps.
	ZoomSpeed float32

	// PanSpeed scales panning.
	PanSpeed float32

	// MinDistance is the closest the camera may come to the target.
	MinDistance float32

	// MaxDistance is the farthest the camera may go from the target;
	// 0 means unlimited.
	MaxDistance float32

	// Size is the size of the input surface in logical pixels,
	// used to convert pointer deltas into angles and distances.
	Size image.Point

	// pending rotation in radians: theta around up, phi from up.
	deltaTheta, deltaPhi float32

	// pending target offset.
	panOffset math32.Vector3

	// pending radius multiplier.
	scale float32

	button Buttons
	last   image.Point
}

// New returns new [Controls] for the given camera, orbiting its target.
func New(cam *scene.Camera) *Controls {
	oc := &Controls{Camera: cam, Target: cam.Target}
	oc.Defaults()
	return oc
}

// Defaults sets default parameters.
func (oc *Controls) Defaults() {
	oc.DampingFactor = 0.05
	oc.RotateSpeed = 1
	oc.ZoomSpeed = 1
	oc.PanSpeed = 1
	oc.scale = 1
}

// PointerDown starts a drag with the given button at the given position.
func (oc *Controls) PointerDown(btn Buttons, pos image.Point) {
	oc.button = btn
	oc.last = pos
}

// PointerUp ends the current drag.
func (oc *Controls) PointerUp() {
	oc.button = NoButton
}

// PointerMove continues the current drag, if any, to the given position.
func (oc *Controls) PointerMove(pos image.Point) {
	if oc.button == NoButton {
		return
	}
	del := pos.Sub(oc.last)
	oc.last = pos
	switch oc.button {
	case Left:
		oc.Rotate(float32(del.X), float32(del.Y))
	case Middle, Right:
		oc.Pan(float32(del.X), float32(del.Y))
	}
}

// Wheel dollies in for negative deltaY and out for positive deltaY.
func (oc *Controls) Wheel(deltaY float32) {
	switch {
	case deltaY < 0:
		oc.scale *= oc.zoomScale()
	case deltaY > 0:
		oc.scale /= oc.zoomScale()
	}
}

func (oc *Controls) zoomScale() float32 {
	return math32.Pow(0.95, oc.ZoomSpeed)
}

func (oc *Controls) height() float32 {
	if oc.Size.Y <= 0 {
		return 1
	}
	return float32(oc.Size.Y)
}

// Rotate adds a rotation for a pointer movement of dx, dy pixels:
// a full surface height of movement is a full turn.
func (oc *Controls) Rotate(dx, dy float32) {
	h := oc.height()
	oc.deltaTheta -= 2 * math32.Pi * dx / h * oc.RotateSpeed
	oc.deltaPhi -= 2 * math32.Pi * dy / h * oc.RotateSpeed
}

// Pan adds a target translation for a pointer movement of dx, dy
// pixels, in the plane of the view, scaled so that the point under
// the pointer at the target distance follows the pointer.
func (oc *Controls) Pan(dx, dy float32) {
	cam := oc.Camera
	dist := cam.Pose.Pos.Sub(oc.Target).Length()
	dist *= math32.Tan(math32.DegToRad(cam.FOV / 2))
	h := oc.height()
	left := cam.Right().MulScalar(-2 * dx * dist / h * oc.PanSpeed)
	up := cam.Up().MulScalar(2 * dy * dist / h * oc.PanSpeed)
	oc.panOffset = oc.panOffset.Add(left).Add(up)
}

// Update applies pending motion to the camera and returns whether the
// camera moved. With damping, only DampingFactor of the pending motion
// is applied and the rest decays for subsequent updates.
func (oc *Controls) Update() bool {
	cam := oc.Camera
	offset := cam.Pose.Pos.Sub(oc.Target)
	radius, theta, phi := toSpherical(offset)

	f := float32(1)
	if oc.EnableDamping {
		f = oc.DampingFactor
	}
	theta += oc.deltaTheta * f
	phi += oc.deltaPhi * f
	phi = math32.Clamp(phi, minPolar, math32.Pi-minPolar)

	radius *= oc.scale
	radius = math32.Max(radius, oc.MinDistance)
	if oc.MaxDistance > 0 {
		radius = math32.Min(radius, oc.MaxDistance)
	}
	oc.Target = oc.Target.Add(oc.panOffset.MulScalar(f))

	npos := oc.Target.Add(fromSpherical(radius, theta, phi))
	moved := npos.Sub(cam.Pose.Pos).Length() > 1e-4 || cam.Target != oc.Target
	cam.Pose.Pos = npos
	cam.LookAt(oc.Target, math32.Vec3(0, 1, 0))

	if oc.EnableDamping {
		oc.deltaTheta *= 1 - oc.DampingFactor
		oc.deltaPhi *= 1 - oc.DampingFactor
		oc.panOffset = oc.panOffset.MulScalar(1 - oc.DampingFactor)
	} else {
		oc.deltaTheta = 0
		oc.deltaPhi = 0
		oc.panOffset = math32.Vector3{}
	}
	oc.scale = 1
	return moved
}

// toSpherical returns the radius, azimuth around +Y measured from +Z,
// and polar angle from +Y of the given offset.
func toSpherical(v math32.Vector3) (radius, theta, phi float32) {
	radius = v.Length()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(v.X, v.Z)
	phi = math32.Acos(math32.Clamp(v.Y/radius, -1, 1))
	return
}

func fromSpherical(radius, theta, phi float32) math32.Vector3 {
	sp := math32.Sin(phi) * radius
	return math32.Vec3(sp*math32.Sin(theta), math32.Cos(phi)*radius, sp*math32.Cos(theta))
}
