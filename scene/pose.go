// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position and orientation,
// always relative to the parent element.
type Pose struct {

	// Pos is the position of the center of the element (relative to parent).
	Pos math32.Vector3

	// Scale (relative to parent).
	Scale math32.Vector3

	// Quat is the rotation (relative to parent).
	Quat math32.Quat

	// Matrix is the local matrix, built from Pos, Quat and Scale.
	Matrix math32.Matrix4 `display:"-"`

	// WorldMatrix is the absolute matrix, relative to the scene root.
	WorldMatrix math32.Matrix4 `display:"-"`

	// ParMatrix is the cached world matrix of the parent.
	ParMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat == (math32.Quat{}) {
		ps.Quat.SetIdentity()
	}
	if ps.ParMatrix == (math32.Matrix4{}) {
		ps.ParMatrix.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix from position,
// quaternion and scale.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world matrix from Matrix and the
// parent's world matrix (nil keeps the cached parent matrix).
// Does not call UpdateMatrix.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld != nil {
		ps.ParMatrix = *parWorld
	}
	ps.WorldMatrix.MulMatrices(&ps.ParMatrix, &ps.Matrix)
}

// SetMatrix sets the local transformation matrix and updates Pos, Quat, Scale.
func (ps *Pose) SetMatrix(m *math32.Matrix4) {
	ps.Matrix = *m
	ps.Pos, ps.Quat, ps.Scale = ps.Matrix.Decompose()
}

// LookAt points the element at the given target location
// using the given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}
