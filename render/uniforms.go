// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/planets/scene"
)

// Camera is the per-frame camera uniform.
type Camera struct {
	View       math32.Matrix4
	Projection math32.Matrix4
}

// Object is the per-mesh uniform, indexed by dynamic offset.
type Object struct {

	// Model is the world matrix of the mesh.
	Model math32.Matrix4

	// Color multiplies the texture color for basic materials.
	Color math32.Vector4

	// Params holds the first four shader material uniforms,
	// in order: uTime is Params.x.
	Params math32.Vector4
}

// MaxParams is the number of shader material uniforms passed to shaders.
const MaxParams = 4

// PhysicalSize returns the device pixel size for the given logical
// size and pixel ratio, rounded to the nearest pixel and at least 1
// in each dimension.
func PhysicalSize(size image.Point, pixelRatio float32) image.Point {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	ps := image.Point{
		X: int(math32.Round(float32(size.X) * pixelRatio)),
		Y: int(math32.Round(float32(size.Y) * pixelRatio)),
	}
	return ps.Add(image.Pt(max(0, 1-ps.X), max(0, 1-ps.Y)))
}

// ColorVector returns the given color as normalized components.
func ColorVector(c color.RGBA) math32.Vector4 {
	return math32.Vec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

// ShaderParams returns the first [MaxParams] uniforms of the given
// shader material, in order.
func ShaderParams(sm *scene.ShaderMaterial) math32.Vector4 {
	var p [MaxParams]float32
	for i, kv := range sm.Uniforms.Order {
		if i >= MaxParams {
			break
		}
		p[i] = kv.Value
	}
	return math32.Vec4(p[0], p[1], p[2], p[3])
}

// NewObject returns the uniform for the given mesh, which
// must have its world matrix updated.
func NewObject(ms *scene.Mesh) Object {
	obj := Object{Model: ms.Pose.WorldMatrix, Color: math32.Vec4(1, 1, 1, 1)}
	switch mt := ms.Material.(type) {
	case *scene.BasicMaterial:
		obj.Color = ColorVector(mt.Color)
	case *scene.ShaderMaterial:
		obj.Params = ShaderParams(mt)
	}
	return obj
}
