// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"image"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/planets/scene"
	"github.com/stretchr/testify/assert"
)

func newTestControls() *Controls {
	cam := scene.NewCamera(75, 1, 1, 100)
	cam.SetPosition(6, 2, 10)
	oc := New(cam)
	oc.Size = image.Point{800, 600}
	return oc
}

func TestUpdateWithoutInput(t *testing.T) {
	oc := newTestControls()
	pos := oc.Camera.Pose.Pos
	oc.EnableDamping = true
	assert.False(t, oc.Update())
	np := oc.Camera.Pose.Pos
	tolassert.EqualTol(t, pos.X, np.X, 1e-4)
	tolassert.EqualTol(t, pos.Y, np.Y, 1e-4)
	tolassert.EqualTol(t, pos.Z, np.Z, 1e-4)
}

func TestRotateKeepsDistance(t *testing.T) {
	oc := newTestControls()
	dist := oc.Camera.Pose.Pos.Length()
	oc.PointerDown(Left, image.Point{100, 100})
	oc.PointerMove(image.Point{160, 130})
	oc.PointerUp()
	assert.True(t, oc.Update())
	tolassert.EqualTol(t, dist, oc.Camera.Pose.Pos.Length(), 1e-4)
	assert.Equal(t, math32.Vector3{}, oc.Camera.Target)

	// moves after release are ignored
	oc.PointerMove(image.Point{500, 500})
	assert.False(t, oc.Update())
}

func TestDampingDecays(t *testing.T) {
	oc := newTestControls()
	oc.EnableDamping = true
	oc.Rotate(100, 0)
	start := oc.deltaTheta

	assert.True(t, oc.Update())
	tolassert.EqualTol(t, start*(1-oc.DampingFactor), oc.deltaTheta, 1e-6)
	p1 := oc.Camera.Pose.Pos

	// inertia keeps moving the camera without new input
	assert.True(t, oc.Update())
	assert.NotEqual(t, p1, oc.Camera.Pose.Pos)
	for range 500 {
		oc.Update()
	}
	tolassert.EqualTol(t, 0, oc.deltaTheta, 1e-6)
}

func TestNoDampingAppliesAtOnce(t *testing.T) {
	oc := newTestControls()
	oc.Rotate(0, 0)
	oc.Rotate(200, 0)
	oc.Update()
	assert.Equal(t, float32(0), oc.deltaTheta)
	assert.Equal(t, float32(0), oc.deltaPhi)
}

func TestPolarClamp(t *testing.T) {
	oc := newTestControls()
	oc.Rotate(0, 100000)
	oc.Update()
	_, _, phi := toSpherical(oc.Camera.Pose.Pos.Sub(oc.Target))
	assert.Greater(t, phi, float32(0))
	assert.Less(t, phi, float32(math32.Pi))
}

func TestWheelDolly(t *testing.T) {
	oc := newTestControls()
	dist := oc.Camera.Pose.Pos.Length()
	oc.Wheel(-1)
	oc.Update()
	tolassert.EqualTol(t, dist*0.95, oc.Camera.Pose.Pos.Length(), 1e-3)

	oc.Wheel(1)
	oc.Update()
	tolassert.EqualTol(t, dist, oc.Camera.Pose.Pos.Length(), 1e-3)

	oc.MinDistance = 5
	for range 100 {
		oc.Wheel(-1)
	}
	oc.Update()
	tolassert.EqualTol(t, 5, oc.Camera.Pose.Pos.Length(), 1e-3)
}

func TestPanMovesTarget(t *testing.T) {
	oc := newTestControls()
	oc.PointerDown(Right, image.Point{0, 0})
	oc.PointerMove(image.Point{50, 0})
	oc.Update()
	assert.NotEqual(t, math32.Vector3{}, oc.Target)
	assert.Equal(t, oc.Target, oc.Camera.Target)

	// panning keeps the view direction
	off := oc.Camera.Pose.Pos.Sub(oc.Target)
	tolassert.EqualTol(t, math32.Vec3(6, 2, 10).Length(), off.Length(), 1e-3)
}

func TestSphericalRoundTrip(t *testing.T) {
	v := math32.Vec3(6, 2, 10)
	r, th, ph := toSpherical(v)
	w := fromSpherical(r, th, ph)
	tolassert.EqualTol(t, v.X, w.X, 1e-4)
	tolassert.EqualTol(t, v.Y, w.Y, 1e-4)
	tolassert.EqualTol(t, v.Z, w.Z, 1e-4)
}
