// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a [scene.Scene] through a [scene.Camera] onto a
// GPU surface, with one pipeline for basic textured materials and one
// pipeline per shader material.
package render

import (
	"embed"
	"image"
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/gpu"
	"cogentcore.org/planets/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/*.wgsl
var shaders embed.FS

// BasicPipeline is the name of the pipeline for [scene.BasicMaterial].
const BasicPipeline = "basic"

// Renderer draws scenes with a [gpu.GraphicsSystem]. All methods must
// be called on the main thread that owns the GPU.
type Renderer struct {

	// System is the graphics system.
	System *gpu.GraphicsSystem

	// size is the logical output size.
	size image.Point

	// pixelRatio is the applied device pixel ratio.
	pixelRatio float32

	// meshes in draw order, as of sceneVersion.
	meshes []*scene.Mesh

	sceneVersion int

	// texture currently uploaded, and its version.
	texture    *scene.Texture
	texVersion int

	// shader material pipeline versions, by material name.
	shaderVersions map[string]int

	// objects is the staging list of per-mesh uniforms.
	objects []Object

	posv, normv, uvv, idxv *gpu.Var
	camv, objv, texv       *gpu.Var
}

// NewRenderer returns a new renderer drawing to the given surface,
// whose size is the physical size for the given logical size and
// pixel ratio.
func NewRenderer(gp *gpu.GPU, sf *gpu.Surface, size image.Point, pixelRatio float32) *Renderer {
	rd := &Renderer{size: size, pixelRatio: pixelRatio, shaderVersions: map[string]int{}}
	rd.System = gpu.NewGraphicsSystem(gp, "planets", sf)
	rd.configSystem()
	return rd
}

// configPipeline sets the graphics options shared by all pipelines.
func configPipeline(pl *gpu.GraphicsPipeline) {
	pl.SetGraphicsDefaults()
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
}

func (rd *Renderer) configSystem() {
	sy := rd.System

	pl := sy.AddGraphicsPipeline(BasicPipeline)
	configPipeline(pl)
	sh := pl.AddShader(BasicPipeline)
	sh.OpenFileFS(shaders, "shaders/basic.wgsl")
	pl.AddEntry(sh, gpu.VertexShader, "vs_main")
	pl.AddEntry(sh, gpu.FragmentShader, "fs_main")

	vgp := sy.Vars().AddVertexGroup()
	fgp := sy.Vars().AddGroup(gpu.Uniform, "Frame")          // 0
	ogp := sy.Vars().AddGroup(gpu.Uniform, "Object")         // 1
	tgp := sy.Vars().AddGroup(gpu.SampledTexture, "Texture") // 2

	rd.posv = vgp.Add("Pos", gpu.Float32Vector3, 0, gpu.VertexShader)
	rd.normv = vgp.Add("Norm", gpu.Float32Vector3, 0, gpu.VertexShader)
	rd.uvv = vgp.Add("TexCoord", gpu.Float32Vector2, 0, gpu.VertexShader)
	rd.idxv = vgp.Add("Index", gpu.Uint32, 0, gpu.VertexShader)
	rd.idxv.Role = gpu.Index

	rd.camv = fgp.AddStruct("Camera", int(unsafe.Sizeof(Camera{})), 1, gpu.VertexShader)
	rd.objv = ogp.AddStruct("Object", int(unsafe.Sizeof(Object{})), 1, gpu.VertexShader, gpu.FragmentShader)
	rd.objv.DynamicOffset = true
	rd.texv = tgp.Add("TexSampler", gpu.TextureRGBA32, 1, gpu.FragmentShader)

	vgp.SetNValues(1)
	fgp.SetNValues(1)
	ogp.SetNValues(1)
	tgp.SetNValues(1)

	sy.Config()

	rd.objv.Values.Values[0].SetDynamicN(1)
	// dummy texture until the real one is loaded
	dimg := image.NewRGBA(image.Rectangle{Max: image.Point{2, 2}})
	rd.texv.Values.Values[0].SetFromGoImage(dimg, 0)
	rd.applySize()
}

// Release releases all GPU resources.
func (rd *Renderer) Release() {
	if rd.System != nil {
		rd.System.Release()
		rd.System = nil
	}
}

// Size returns the logical output size.
func (rd *Renderer) Size() image.Point { return rd.size }

// PixelRatio returns the applied device pixel ratio.
func (rd *Renderer) PixelRatio() float32 { return rd.pixelRatio }

// SetSize sets the logical output size.
func (rd *Renderer) SetSize(size image.Point) {
	if size == rd.size {
		return
	}
	rd.size = size
	rd.applySize()
}

// SetPixelRatio sets the device pixel ratio, which should already be
// capped by the caller.
func (rd *Renderer) SetPixelRatio(ratio float32) {
	if ratio == rd.pixelRatio {
		return
	}
	rd.pixelRatio = ratio
	rd.applySize()
}

func (rd *Renderer) applySize() {
	if rd.size.X <= 0 || rd.size.Y <= 0 {
		return
	}
	ps := PhysicalSize(rd.size, rd.pixelRatio)
	slog.Debug("render size", "logical", rd.size, "pixelRatio", rd.pixelRatio, "physical", ps)
	rd.System.SetSize(ps)
}

// Render draws the given scene from the given camera, in one render pass.
func (rd *Renderer) Render(sc *scene.Scene, cam *scene.Camera) error {
	sy := rd.System
	sc.UpdateWorld()
	if sc.Version != rd.sceneVersion || rd.meshes == nil {
		rd.syncMeshes(sc)
	}
	rd.syncMaterials()

	sy.SetClearColor(sc.Background)
	gpu.SetValueFrom(rd.camv.Values.Values[0], []Camera{{View: cam.ViewMatrix, Projection: cam.ProjectionMatrix}})

	objl := rd.objv.Values.Values[0]
	rd.objects = slicesx.SetLength(rd.objects, len(rd.meshes))
	for i, ms := range rd.meshes {
		rd.objects[i] = NewObject(ms)
		gpu.SetDynamicValueFrom(objl, i, rd.objects[i:i+1])
	}
	if len(rd.meshes) > 0 {
		objl.WriteDynamicBuffer()
	}

	rp, err := sy.BeginRenderPass()
	if errors.Log(err) != nil {
		return err
	}
	var last *gpu.GraphicsPipeline
	for i, ms := range rd.meshes {
		pl := rd.pipeline(ms)
		if pl == nil || ms.Geometry == nil || ms.Geometry.NumIndex() == 0 {
			continue
		}
		rd.posv.Values.SetCurrentValue(i)
		rd.normv.Values.SetCurrentValue(i)
		rd.uvv.Values.SetCurrentValue(i)
		rd.idxv.Values.SetCurrentValue(i)
		objl.DynamicIndex = i
		if pl != last {
			pl.BindPipeline(rp)
			last = pl
		} else {
			pl.BindAllGroups(rp)
		}
		pl.BindDrawIndexed(rp)
	}
	rp.End()
	sy.EndRenderPass(rp)
	return nil
}

// pipeline returns the pipeline for the material of the given mesh,
// or nil if it has none.
func (rd *Renderer) pipeline(ms *scene.Mesh) *gpu.GraphicsPipeline {
	switch mt := ms.Material.(type) {
	case *scene.BasicMaterial:
		return rd.System.GraphicsPipelines[BasicPipeline]
	case *scene.ShaderMaterial:
		return rd.System.GraphicsPipelines[mt.Name]
	}
	return nil
}

// syncMeshes uploads the geometry of all meshes in the scene,
// one vertex value per mesh.
func (rd *Renderer) syncMeshes(sc *scene.Scene) {
	rd.sceneVersion = sc.Version
	rd.meshes = sc.Meshes()
	nm := len(rd.meshes)
	slog.Debug("syncing meshes", "n", nm)
	rd.System.Vars().VertexGroup().SetNValues(max(nm, 1))
	for i, ms := range rd.meshes {
		gm := ms.Geometry
		if gm == nil || gm.NumIndex() == 0 {
			continue
		}
		gpu.SetValueFrom(rd.posv.Values.Values[i], gm.Pos)
		gpu.SetValueFrom(rd.normv.Values.Values[i], gm.Norm)
		gpu.SetValueFrom(rd.uvv.Values.Values[i], gm.TexCoord)
		gpu.SetValueFrom(rd.idxv.Values.Values[i], gm.Index)
	}
	rd.objv.Values.Values[0].SetDynamicN(max(nm, 1))
}

// syncMaterials uploads a changed texture map and rebuilds the
// pipelines of shader materials whose sources changed.
func (rd *Renderer) syncMaterials() {
	for _, ms := range rd.meshes {
		switch mt := ms.Material.(type) {
		case *scene.BasicMaterial:
			tx := mt.Map
			if tx == nil || tx.RGBA == nil || (tx == rd.texture && tx.Version == rd.texVersion) {
				continue
			}
			slog.Debug("uploading texture", "name", tx.Name, "size", tx.RGBA.Bounds().Size())
			rd.texv.Values.Values[0].SetFromGoImage(tx.RGBA, 0)
			rd.texture = tx
			rd.texVersion = tx.Version
		case *scene.ShaderMaterial:
			if v, ok := rd.shaderVersions[mt.Name]; ok && v == mt.Version {
				continue
			}
			errors.Log(rd.configShaderPipeline(mt))
			rd.shaderVersions[mt.Name] = mt.Version
		}
	}
}

// configShaderPipeline (re)builds the pipeline for the given shader
// material from its current sources. On failure the material has no
// pipeline, and its meshes are not drawn until the sources change.
func (rd *Renderer) configShaderPipeline(sm *scene.ShaderMaterial) error {
	sy := rd.System
	if old, ok := sy.GraphicsPipelines[sm.Name]; ok {
		old.Release()
		delete(sy.GraphicsPipelines, sm.Name)
	}
	slog.Info("building shader pipeline", "name", sm.Name, "version", sm.Version)
	pl := sy.AddGraphicsPipeline(sm.Name)
	configPipeline(pl)
	err := rd.openShaders(pl, sm)
	if err == nil {
		err = pl.Config(true)
	}
	if err != nil {
		pl.Release()
		delete(sy.GraphicsPipelines, sm.Name)
	}
	return err
}

func (rd *Renderer) openShaders(pl *gpu.GraphicsPipeline, sm *scene.ShaderMaterial) error {
	vsh := pl.AddShader(sm.Name + "-vertex")
	if err := vsh.OpenCode(sm.VertexShader); err != nil {
		return err
	}
	fsh := pl.AddShader(sm.Name + "-fragment")
	if err := fsh.OpenCode(sm.FragmentShader); err != nil {
		return err
	}
	pl.AddEntry(vsh, gpu.VertexShader, "vs_main")
	pl.AddEntry(fsh, gpu.FragmentShader, "fs_main")
	return nil
}
