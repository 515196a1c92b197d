// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a minimal 3D scene graph: groups, meshes
// and a perspective camera, with shared materials and textures.
package scene

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/base/indent"
)

// Scene is the root of the scene graph. It owns all visible nodes
// for the lifetime of the application.
type Scene struct {
	Group

	// Background is the clear color.
	Background color.RGBA

	// Version is incremented whenever nodes are added, so that the
	// renderer knows to resync its meshes.
	Version int
}

// NewScene returns a new empty scene with a black background.
func NewScene() *Scene {
	sc := &Scene{Background: color.RGBA{0, 0, 0, 255}}
	sc.Name = "scene"
	sc.Pose.Defaults()
	return sc
}

// Add adds the given node as a direct child of the scene.
func (sc *Scene) Add(n Node) {
	AddChild(sc, n)
	sc.Version++
}

// Meshes returns all meshes in the scene, in depth-first order.
func (sc *Scene) Meshes() []*Mesh {
	return Meshes(sc)
}

// UpdateWorld updates the world matrices of all nodes in the scene.
func (sc *Scene) UpdateWorld() {
	UpdateWorld(sc, nil)
}

// Dump returns a multi-line description of the hierarchy at and
// below the given node, one node per line, indented by depth.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, depth int) {
	nb := n.AsNodeBase()
	sb.WriteString(indent.Spaces(depth, 2))
	fmt.Fprintf(sb, "%s %q", n.Kind(), nb.Name)
	if ms, ok := n.(*Mesh); ok {
		if ms.Geometry != nil {
			fmt.Fprintf(sb, " vertices: %d indexes: %d", ms.Geometry.NumVertex(), ms.Geometry.NumIndex())
		}
		if ms.Material != nil {
			fmt.Fprintf(sb, " material: %s", ms.Material.MaterialKind())
		}
	}
	sb.WriteString("\n")
	for _, kid := range nb.Children {
		dump(sb, kid, depth+1)
	}
}
