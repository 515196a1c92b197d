// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Camera is a perspective camera. It is a [Node] so that it can
// be placed in the scene graph, but it is always drawn from its
// own Pose, which is relative to the scene root.
type Camera struct {
	NodeBase

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near clip plane distance.
	Near float32

	// Far is the far clip plane distance.
	Far float32

	// Target is where the camera is pointing.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// ViewMatrix is the inverse of the pose matrix.
	ViewMatrix math32.Matrix4 `display:"-"`

	// ProjectionMatrix is the perspective transform.
	ProjectionMatrix math32.Matrix4 `display:"-"`
}

func (cm *Camera) Kind() NodeKinds { return KindCamera }

// NewCamera returns a new perspective camera with the given vertical
// field of view in degrees, aspect ratio and clip planes,
// looking at the origin with +Y up.
func NewCamera(fov, aspect, near, far float32) *Camera {
	cm := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	cm.Name = "camera"
	cm.Pose.Defaults()
	cm.UpDir = math32.Vec3(0, 1, 0)
	cm.UpdateProjectionMatrix()
	cm.UpdateMatrix()
	return cm
}

// SetPosition sets the camera position and points it at the current Target.
func (cm *Camera) SetPosition(x, y, z float32) *Camera {
	cm.Pose.Pos.Set(x, y, z)
	cm.LookAt(cm.Target, cm.UpDir)
	return cm
}

// LookAt points the camera at the given target location, using the
// given up direction, and records both for later camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// UpdateMatrix updates the pose and view matrices from the current pose.
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	if inv, err := cm.Pose.Matrix.Inverse(); err == nil {
		cm.ViewMatrix = *inv
	}
}

// UpdateProjectionMatrix recomputes the projection matrix. It must be
// called after changing FOV, Aspect, Near or Far.
func (cm *Camera) UpdateProjectionMatrix() {
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}

// SetAspect sets the aspect ratio from the given width and height,
// and updates the projection matrix. A zero height is ignored.
func (cm *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
	cm.UpdateProjectionMatrix()
}

// Right returns the camera's local +X axis in world coordinates.
func (cm *Camera) Right() math32.Vector3 {
	return math32.Vec3(1, 0, 0).MulQuat(cm.Pose.Quat)
}

// Up returns the camera's local +Y axis in world coordinates.
func (cm *Camera) Up() math32.Vector3 {
	return math32.Vec3(0, 1, 0).MulQuat(cm.Pose.Quat)
}
