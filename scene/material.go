// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
)

// MaterialKinds are the kinds of [Material]. The renderer keeps
// one pipeline per kind.
type MaterialKinds int32 //enums:enum -trim-prefix Material

const (
	// MaterialBasic is a flat, unlit material colored by a texture map.
	MaterialBasic MaterialKinds = iota

	// MaterialShader is a material drawn by custom shader programs.
	MaterialShader
)

// Material is the interface for the material variants
// that can be assigned to a [Mesh].
type Material interface {
	// MaterialKind returns the kind of material.
	MaterialKind() MaterialKinds
}

// BasicMaterial is an unlit material: the surface color is the
// texture map color (if any) multiplied by Color.
type BasicMaterial struct {

	// Color multiplies the texture color; white by default.
	Color color.RGBA

	// Map is the color texture. It can be set after meshes
	// have been assigned this material.
	Map *Texture
}

func (bm *BasicMaterial) MaterialKind() MaterialKinds { return MaterialBasic }

// NewBasicMaterial returns a new white [BasicMaterial] with the given map.
func NewBasicMaterial(tex *Texture) *BasicMaterial {
	return &BasicMaterial{Color: color.RGBA{255, 255, 255, 255}, Map: tex}
}

// TimeUniform is the name of the time uniform on gas shader materials.
const TimeUniform = "uTime"

// ShaderMaterial is a material whose appearance is computed by custom
// vertex and fragment shader programs (WGSL source text), with a set
// of named float uniforms.
type ShaderMaterial struct {

	// Name identifies the material, and the pipeline it is drawn with.
	Name string

	// VertexShader is the WGSL source of the vertex stage,
	// with entry point vs_main.
	VertexShader string

	// FragmentShader is the WGSL source of the fragment stage,
	// with entry point fs_main.
	FragmentShader string

	// Uniforms are named float values, in upload order.
	Uniforms ordmap.Map[string, float32]

	// Version is incremented whenever the shader sources change,
	// so that the renderer knows to rebuild its pipeline.
	Version int
}

func (sm *ShaderMaterial) MaterialKind() MaterialKinds { return MaterialShader }

// NewShaderMaterial returns a new [ShaderMaterial] with the given
// shader sources and the time uniform initialized to zero.
func NewShaderMaterial(name, vertex, fragment string) *ShaderMaterial {
	sm := &ShaderMaterial{Name: name, VertexShader: vertex, FragmentShader: fragment}
	sm.Uniforms.Init()
	sm.Uniforms.Add(TimeUniform, 0)
	return sm
}

// SetUniform sets the value of the named uniform, adding it if new.
func (sm *ShaderMaterial) SetUniform(name string, val float32) {
	sm.Uniforms.Add(name, val)
}

// Uniform returns the value of the named uniform, 0 if not present.
func (sm *ShaderMaterial) Uniform(name string) float32 {
	val, _ := sm.Uniforms.ValueByKeyTry(name)
	return val
}

// SetShaders replaces the shader sources and bumps the Version.
func (sm *ShaderMaterial) SetShaders(vertex, fragment string) {
	sm.VertexShader = vertex
	sm.FragmentShader = fragment
	sm.Version++
}
