// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Geometry is an indexed triangle mesh. Vertex arrays always
// include normals and texture coordinates, so that every
// material can draw every geometry.
type Geometry struct {

	// Pos has 3 floats per vertex.
	Pos math32.ArrayF32

	// Norm has 3 floats per vertex.
	Norm math32.ArrayF32

	// TexCoord has 2 floats per vertex.
	TexCoord math32.ArrayF32

	// Index has 3 indexes per triangle.
	Index math32.ArrayU32
}

// NumVertex returns the number of vertices.
func (gm *Geometry) NumVertex() int { return len(gm.Pos) / 3 }

// NumIndex returns the number of indexes.
func (gm *Geometry) NumIndex() int { return len(gm.Index) }

// Fill completes optional arrays so that all arrays agree on the
// number of vertices: missing normals and texture coordinates are
// zero, and a missing index is the sequential triangle list.
func (gm *Geometry) Fill() {
	nv := gm.NumVertex()
	if len(gm.Norm) != nv*3 {
		gm.Norm = make(math32.ArrayF32, nv*3)
	}
	if len(gm.TexCoord) != nv*2 {
		gm.TexCoord = make(math32.ArrayF32, nv*2)
	}
	if len(gm.Index) == 0 {
		gm.Index = make(math32.ArrayU32, nv)
		for i := range gm.Index {
			gm.Index[i] = uint32(i)
		}
	}
}
