// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

//go:generate core generate

import (
	"cogentcore.org/core/math32"
)

// NodeKinds are the kinds of [Node] in the scene graph.
// Each Node reports exactly one kind, so code that needs
// to distinguish meshes from other nodes switches on this
// instead of probing for capabilities.
type NodeKinds int32 //enums:enum -trim-prefix Kind

const (
	// KindGroup is a transform-only node that collects children.
	KindGroup NodeKinds = iota

	// KindMesh is a renderable node with geometry and a material.
	KindMesh

	// KindCamera is a camera placed in the scene graph.
	KindCamera
)

// Node is the interface for all nodes in the scene graph.
type Node interface {
	// AsNodeBase returns the [NodeBase] that all nodes embed.
	AsNodeBase() *NodeBase

	// Kind returns the [NodeKinds] of this node.
	Kind() NodeKinds
}

// NodeBase holds the state common to all nodes: a name,
// a pose relative to the parent, and children.
type NodeBase struct {

	// Name of the node. Names are not required to be unique.
	Name string

	// Pose is the position, orientation and scale relative to the parent.
	Pose Pose

	// Children of this node, in order.
	Children []Node

	// parent node, nil for roots.
	parent Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase { return nb }

// Parent returns the parent node, or nil for a root.
func (nb *NodeBase) Parent() Node { return nb.parent }

// NumChildren returns the number of direct children.
func (nb *NodeBase) NumChildren() int { return len(nb.Children) }

// Group collects nodes in a scene but has no mesh or material of its own.
// Its transform applies to all nodes under it.
type Group struct {
	NodeBase
}

func (gp *Group) Kind() NodeKinds { return KindGroup }

// NewGroup returns a new [Group] with the given name and an identity pose.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	return gp
}

// Mesh is a renderable node: geometry drawn with a material.
type Mesh struct {
	NodeBase

	// Geometry is the vertex data for this mesh.
	Geometry *Geometry

	// Material is the material used to draw the mesh.
	// It is shared by reference with other meshes.
	Material Material
}

func (ms *Mesh) Kind() NodeKinds { return KindMesh }

// NewMesh returns a new [Mesh] with the given name and geometry.
func NewMesh(name string, geom *Geometry) *Mesh {
	ms := &Mesh{Geometry: geom}
	ms.Name = name
	ms.Pose.Defaults()
	return ms
}

// AddChild adds the given child to the given parent node,
// setting its parent link.
func AddChild(parent, child Node) {
	pb := parent.AsNodeBase()
	child.AsNodeBase().parent = parent
	pb.Children = append(pb.Children, child)
}

// Walk calls fun for the given node and all of its descendants
// in depth-first order. Traversal stops early if fun returns false.
func Walk(n Node, fun func(n Node) bool) bool {
	if !fun(n) {
		return false
	}
	for _, kid := range n.AsNodeBase().Children {
		if !Walk(kid, fun) {
			return false
		}
	}
	return true
}

// Meshes returns all meshes at or below the given node,
// in depth-first order.
func Meshes(n Node) []*Mesh {
	var ms []*Mesh
	Walk(n, func(n Node) bool {
		if n.Kind() == KindMesh {
			ms = append(ms, n.(*Mesh))
		}
		return true
	})
	return ms
}

// UpdateWorld updates the local and world matrices of the given node
// and all of its descendants, given the world matrix of its parent
// (nil for identity).
func UpdateWorld(n Node, parWorld *math32.Matrix4) {
	nb := n.AsNodeBase()
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	for _, kid := range nb.Children {
		UpdateWorld(kid, &nb.Pose.WorldMatrix)
	}
}
