// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/planets/scene"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ReadModel reads the named glTF or GLB file from fsys and converts
// its default scene with [ConvertModel]. External buffers are resolved
// relative to the directory of the file.
func ReadModel(fsys fs.FS, name string) (*scene.Group, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dir, err := fs.Sub(fsys, path.Dir(name))
	if err != nil {
		return nil, err
	}
	doc := &gltf.Document{}
	if err := gltf.NewDecoderFS(f, dir).Decode(doc); err != nil {
		return nil, err
	}
	return ConvertModel(doc, path.Base(name))
}

// ConvertModel converts the default scene of the given glTF document
// into a new [scene.Group] with the given name. Each node becomes a
// Group, or a Mesh if it has a mesh with one primitive. A node whose
// mesh has several primitives becomes a Group of Meshes named
// <node>_<i>. Node names are sanitized with [SanitizeName].
func ConvertModel(doc *gltf.Document, name string) (*scene.Group, error) {
	root := scene.NewGroup(name)
	var roots []int
	switch {
	case len(doc.Scenes) > 0:
		si := 0
		if doc.Scene != nil {
			si = *doc.Scene
		}
		if si < 0 || si >= len(doc.Scenes) {
			return nil, fmt.Errorf("scene index %d out of range", si)
		}
		roots = doc.Scenes[si].Nodes
	default:
		roots = rootNodes(doc)
	}
	cv := &converter{doc: doc, visiting: map[int]bool{}}
	for _, ni := range roots {
		n, err := cv.node(ni)
		if err != nil {
			return nil, err
		}
		scene.AddChild(root, n)
	}
	return root, nil
}

// rootNodes returns the nodes that are not a child of any other node,
// for documents that do not define scenes.
func rootNodes(doc *gltf.Document) []int {
	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i, c := range isChild {
		if !c {
			roots = append(roots, i)
		}
	}
	return roots
}

type converter struct {
	doc      *gltf.Document
	visiting map[int]bool
}

func (cv *converter) node(ni int) (scene.Node, error) {
	if ni < 0 || ni >= len(cv.doc.Nodes) {
		return nil, fmt.Errorf("node index %d out of range", ni)
	}
	if cv.visiting[ni] {
		return nil, fmt.Errorf("node %d is its own ancestor", ni)
	}
	cv.visiting[ni] = true
	defer delete(cv.visiting, ni)

	gn := cv.doc.Nodes[ni]
	name := SanitizeName(gn.Name)
	if name == "" && gn.Mesh != nil && *gn.Mesh >= 0 && *gn.Mesh < len(cv.doc.Meshes) {
		name = SanitizeName(cv.doc.Meshes[*gn.Mesh].Name)
	}
	if name == "" {
		name = fmt.Sprintf("node_%d", ni)
	}
	var out scene.Node
	if gn.Mesh != nil {
		mn, err := cv.mesh(*gn.Mesh, name)
		if err != nil {
			return nil, err
		}
		out = mn
	} else {
		out = scene.NewGroup(name)
	}
	setPose(&out.AsNodeBase().Pose, gn)
	for _, ci := range gn.Children {
		kid, err := cv.node(ci)
		if err != nil {
			return nil, err
		}
		scene.AddChild(out, kid)
	}
	return out, nil
}

func (cv *converter) mesh(mi int, name string) (scene.Node, error) {
	if mi < 0 || mi >= len(cv.doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", mi)
	}
	gm := cv.doc.Meshes[mi]
	if len(gm.Primitives) == 1 {
		geom, err := cv.geometry(gm.Primitives[0])
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", name, err)
		}
		return scene.NewMesh(name, geom), nil
	}
	gp := scene.NewGroup(name)
	for i, p := range gm.Primitives {
		pname := fmt.Sprintf("%s_%d", name, i)
		geom, err := cv.geometry(p)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", pname, err)
		}
		scene.AddChild(gp, scene.NewMesh(pname, geom))
	}
	return gp, nil
}

func (cv *converter) accessor(ai int) (*gltf.Accessor, error) {
	if ai < 0 || ai >= len(cv.doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", ai)
	}
	return cv.doc.Accessors[ai], nil
}

func (cv *converter) geometry(p *gltf.Primitive) (*scene.Geometry, error) {
	if p.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("unsupported primitive mode %v", p.Mode)
	}
	pi, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return nil, errors.New("primitive has no POSITION attribute")
	}
	acr, err := cv.accessor(pi)
	if err != nil {
		return nil, err
	}
	pos, err := modeler.ReadPosition(cv.doc, acr, nil)
	if err != nil {
		return nil, err
	}
	geom := &scene.Geometry{}
	geom.Pos = make(math32.ArrayF32, 0, 3*len(pos))
	for _, v := range pos {
		geom.Pos = append(geom.Pos, v[0], v[1], v[2])
	}
	if ni, ok := p.Attributes[gltf.NORMAL]; ok {
		if acr, err = cv.accessor(ni); err != nil {
			return nil, err
		}
		norm, err := modeler.ReadNormal(cv.doc, acr, nil)
		if err != nil {
			return nil, err
		}
		geom.Norm = make(math32.ArrayF32, 0, 3*len(norm))
		for _, v := range norm {
			geom.Norm = append(geom.Norm, v[0], v[1], v[2])
		}
	}
	if ti, ok := p.Attributes[gltf.TEXCOORD_0]; ok {
		if acr, err = cv.accessor(ti); err != nil {
			return nil, err
		}
		uv, err := modeler.ReadTextureCoord(cv.doc, acr, nil)
		if err != nil {
			return nil, err
		}
		geom.TexCoord = make(math32.ArrayF32, 0, 2*len(uv))
		for _, v := range uv {
			geom.TexCoord = append(geom.TexCoord, v[0], v[1])
		}
	}
	if p.Indices != nil {
		if acr, err = cv.accessor(*p.Indices); err != nil {
			return nil, err
		}
		idx, err := modeler.ReadIndices(cv.doc, acr, nil)
		if err != nil {
			return nil, err
		}
		nv := uint32(geom.NumVertex())
		for _, ix := range idx {
			if ix >= nv {
				return nil, fmt.Errorf("index %d out of range for %d vertices", ix, nv)
			}
		}
		geom.Index = math32.ArrayU32(idx)
	}
	geom.Fill()
	return geom, nil
}

// setPose sets the given pose from the matrix or the
// translation, rotation and scale of the given node.
func setPose(ps *scene.Pose, gn *gltf.Node) {
	if m := gn.MatrixOrDefault(); m != gltf.DefaultMatrix {
		var mat math32.Matrix4
		for i, v := range m {
			mat[i] = float32(v)
		}
		ps.SetMatrix(&mat)
		return
	}
	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault()
	s := gn.ScaleOrDefault()
	ps.Pos = math32.Vec3(float32(t[0]), float32(t[1]), float32(t[2]))
	ps.Quat = math32.NewQuat(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))
	ps.Scale = math32.Vec3(float32(s[0]), float32(s[1]), float32(s[2]))
}

// SanitizeName returns the given glTF node name with whitespace
// replaced by underscores and the characters []./: removed, so that
// names can be used as path elements.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return '_'
		case strings.ContainsRune("[]./:", r):
			return -1
		}
		return r
	}, name)
}
