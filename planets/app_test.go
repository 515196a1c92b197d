// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"cogentcore.org/planets/assets"
	"cogentcore.org/planets/orbit"
	"cogentcore.org/planets/scene"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDrawer records what the app asks it to do.
type testDrawer struct {
	size       image.Point
	pixelRatio float32
	renders    int
	meshes     int
}

func (td *testDrawer) SetSize(size image.Point)     { td.size = size }
func (td *testDrawer) SetPixelRatio(ratio float32) { td.pixelRatio = ratio }

func (td *testDrawer) Render(sc *scene.Scene, cam *scene.Camera) error {
	td.renders++
	td.meshes = len(sc.Meshes())
	return nil
}

// countHandler is a [slog.Handler] that counts records by level.
type countHandler struct {
	mu     sync.Mutex
	counts map[slog.Level]int
}

func (h *countHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *countHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	h.counts[r.Level]++
	h.mu.Unlock()
	return nil
}

func (h *countHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countHandler) WithGroup(string) slog.Handler      { return h }

func (h *countHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[level]
}

// captureLogs sends all log records to a new counting handler
// for the rest of the test.
func captureLogs(t *testing.T) *countHandler {
	h := &countHandler{counts: map[slog.Level]int{}}
	old := slog.Default()
	slog.SetDefault(slog.New(h))
	t.Cleanup(func() { slog.SetDefault(old) })
	return h
}

func newTestApp(vp Viewport) (*App, *testDrawer) {
	td := &testDrawer{}
	return NewApp(NewConfig(), td, vp), td
}

// testModel returns a group with a mesh for each of the given names.
func testModel(names ...string) *scene.Group {
	root := scene.NewGroup("planets.glb")
	for _, nm := range names {
		scene.AddChild(root, scene.NewMesh(nm, &scene.Geometry{}))
	}
	return root
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, float32(75), cfg.Camera.FOV)
	assert.Equal(t, float32(1), cfg.Camera.Near)
	assert.Equal(t, float32(100), cfg.Camera.Far)
	assert.Equal(t, math32.Vec3(6, 2, 10), cfg.Camera.Position)
	assert.Equal(t, "Circle", cfg.GasMesh)
	assert.Equal(t, "assets/baked-l.jpg", cfg.Texture)
	assert.Equal(t, "assets/planets.glb", cfg.Model)
	assert.False(t, cfg.FlipY)
	assert.True(t, cfg.Controls.Damping)
	assert.Equal(t, float32(0.05), cfg.Controls.DampingFactor)
	assert.Equal(t, float32(2), cfg.Window.MaxPixelRatio)
	assert.Equal(t, 4, cfg.Window.Samples)
	assert.False(t, cfg.AnimateGas)
}

func TestNewApp(t *testing.T) {
	sizes := []image.Point{{1920, 1080}, {800, 600}, {1, 1}, {333, 1000}, {1000, 333}, {7, 3}}
	for _, sz := range sizes {
		a, td := newTestApp(Viewport{Size: sz, DevicePixelRatio: 1})
		assert.Equal(t, float32(sz.X)/float32(sz.Y), a.Camera.Aspect, "size %v", sz)
		assert.Equal(t, sz, td.size)
	}

	a, td := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 3})
	assert.Equal(t, float32(2), td.pixelRatio)
	assert.Equal(t, float32(75), a.Camera.FOV)
	assert.Equal(t, float32(1), a.Camera.Near)
	assert.Equal(t, float32(100), a.Camera.Far)
	assert.Equal(t, math32.Vec3(6, 2, 10), a.Camera.Pose.Pos)
	assert.Equal(t, math32.Vector3{}, a.Controls.Target)
	assert.True(t, a.Controls.EnableDamping)
	assert.Equal(t, 1, a.Scene.NumChildren())
	assert.Equal(t, scene.Node(a.Camera), a.Scene.Children[0])
	assert.Equal(t, float32(0), a.Gas.Uniform(scene.TimeUniform))
	assert.NotEmpty(t, a.Gas.VertexShader)
	assert.NotEmpty(t, a.Gas.FragmentShader)
	assert.Nil(t, a.Model)
}

func TestPixelRatio(t *testing.T) {
	for _, r := range []float32{0.5, 1, 1.25, 2, 2.5, 3, 4} {
		assert.Equal(t, min(r, 2), PixelRatio(r, 2), "ratio %g", r)
		_, td := newTestApp(Viewport{Size: image.Pt(640, 480), DevicePixelRatio: r})
		assert.Equal(t, min(r, 2), td.pixelRatio, "ratio %g", r)
	}
}

func TestAssignMaterials(t *testing.T) {
	gas := scene.NewShaderMaterial(GasMaterial, "", "")
	tex := scene.NewBasicMaterial(nil)

	root := testModel("Circle", "Body", "Ring", "Moon")
	gasN, texN := AssignMaterials(root, "Circle", gas, tex)
	assert.Equal(t, 1, gasN)
	assert.Equal(t, 3, texN)

	root = testModel("Body", "circle", "Circle.001", "CIRCLE")
	gasN, texN = AssignMaterials(root, "Circle", gas, tex)
	assert.Equal(t, 0, gasN)
	assert.Equal(t, 4, texN)
	for _, ms := range scene.Meshes(root) {
		assert.Same(t, tex, ms.Material)
	}

	root = testModel("Circle", "Body", "Circle")
	inner := scene.NewGroup("Rings")
	scene.AddChild(inner, scene.NewMesh("Circle", &scene.Geometry{}))
	scene.AddChild(root, inner)
	gasN, texN = AssignMaterials(root, "Circle", gas, tex)
	assert.Equal(t, 3, gasN)
	assert.Equal(t, 1, texN)
	for _, ms := range scene.Meshes(root) {
		if ms.Name == "Circle" {
			assert.Same(t, gas, ms.Material)
		} else {
			assert.Same(t, tex, ms.Material)
		}
	}
}

func TestModelLoaded(t *testing.T) {
	logs := captureLogs(t)
	a, _ := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	root := testModel("Circle", "Body", "Ring")
	a.ModelLoaded(root, nil)

	ms := scene.Meshes(root)
	require.Len(t, ms, 3)
	assert.Same(t, a.Gas, ms[0].Material)
	assert.Same(t, a.Textured, ms[1].Material)
	assert.Same(t, a.Textured, ms[2].Material)
	assert.Equal(t, 2, a.Scene.NumChildren())
	assert.Same(t, root, a.Model)
	assert.Equal(t, scene.Node(a.Scene), root.Parent())
	assert.Equal(t, 4, logs.count(slog.LevelInfo), "one line per mesh, plus the hierarchy")
	assert.Equal(t, 0, logs.count(slog.LevelError))

	a.ModelLoaded(testModel("Circle"), nil)
	assert.Equal(t, 2, a.Scene.NumChildren())
	assert.Same(t, root, a.Model)
}

func TestLogLevel(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	cfg.VeryVerbose = true
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	cfg.VeryVerbose = false
	cfg.Quiet = true
	assert.Equal(t, slog.LevelError, cfg.LogLevel())
}

func TestModelLoadedDefaultLevel(t *testing.T) {
	old, oldLevel := slog.Default(), logx.UserLevel
	t.Cleanup(func() {
		slog.SetDefault(old)
		logx.UserLevel = oldLevel
	})
	logx.UserLevel = NewConfig().LogLevel()
	var b bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: &logx.UserLevel})))

	a, _ := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	a.ModelLoaded(testModel("Circle", "Body", "Ring"), nil)
	out := b.String()
	for _, nm := range []string{"Circle", "Body", "Ring"} {
		assert.Contains(t, out, "name="+nm)
	}
	assert.Equal(t, 3, strings.Count(out, "msg=mesh"))
	assert.Contains(t, out, "loaded model")
}

func TestDefaultShaderFiles(t *testing.T) {
	cfg := NewConfig()
	gs := DefaultGasShaders()
	vs, err := os.ReadFile(filepath.Join("..", cfg.Root, cfg.GasVertex))
	require.NoError(t, err)
	assert.Equal(t, gs.Vertex, string(vs))
	fsrc, err := os.ReadFile(filepath.Join("..", cfg.Root, cfg.GasFragment))
	require.NoError(t, err)
	assert.Equal(t, gs.Fragment, string(fsrc))
}

func TestModelLoadFailure(t *testing.T) {
	logs := captureLogs(t)
	a, _ := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	before := a.Scene.NumChildren()
	version := a.Scene.Version

	err := &assets.LoadError{Kind: assets.AssetModel, Name: "planets.glb", Err: fs.ErrNotExist}
	a.ModelLoaded(nil, err)
	assert.Equal(t, before, a.Scene.NumChildren())
	assert.Equal(t, version, a.Scene.Version)
	assert.Nil(t, a.Model)
	assert.Equal(t, 1, logs.count(slog.LevelError))

	a.TextureLoaded(nil, errors.New("decode failed"))
	assert.Nil(t, a.Textured.Map)
	assert.Equal(t, 2, logs.count(slog.LevelError))
}

func TestResize(t *testing.T) {
	a, td := newTestApp(Viewport{Size: image.Pt(1920, 1080), DevicePixelRatio: 1})
	assert.Equal(t, float32(1920)/float32(1080), a.Camera.Aspect)
	assert.Equal(t, image.Pt(1920, 1080), td.size)

	a.Resize(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 2.5})
	assert.Equal(t, float32(800)/float32(600), a.Camera.Aspect)
	assert.Equal(t, image.Pt(800, 600), td.size)
	assert.Equal(t, float32(2), td.pixelRatio)
	assert.Equal(t, image.Pt(800, 600), a.Controls.Size)

	var want math32.Matrix4
	want.SetPerspective(75, float32(800)/float32(600), 1, 100)
	assert.Equal(t, want, a.Camera.ProjectionMatrix)

	a.Resize(Viewport{Size: image.Pt(800, 0), DevicePixelRatio: 1})
	assert.Equal(t, float32(800)/float32(600), a.Camera.Aspect)
	assert.Equal(t, image.Pt(800, 600), td.size)
}

func TestResizeIdempotent(t *testing.T) {
	a, td := newTestApp(Viewport{Size: image.Pt(1920, 1080), DevicePixelRatio: 1})
	vp := Viewport{Size: image.Pt(1024, 768), DevicePixelRatio: 1.5}
	a.Resize(vp)
	cam := *a.Camera
	drw := *td
	a.Resize(vp)
	assert.Equal(t, cam.Aspect, a.Camera.Aspect)
	assert.Equal(t, cam.ProjectionMatrix, a.Camera.ProjectionMatrix)
	assert.Equal(t, drw, *td)
	assert.Equal(t, vp, a.Viewport)
}

func TestStep(t *testing.T) {
	a, td := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	now := time.Now()
	a.Controls.PointerDown(orbit.Left, image.Pt(400, 300))
	a.Controls.PointerMove(image.Pt(440, 300))
	a.Controls.PointerUp()
	pos := a.Camera.Pose.Pos

	require.NoError(t, a.Step(now))
	assert.Equal(t, 1, td.renders)
	assert.NotEqual(t, pos, a.Camera.Pose.Pos, "controls must update before rendering")

	require.NoError(t, a.Step(now.Add(2*time.Second)))
	assert.Equal(t, 2, td.renders)
	assert.Equal(t, float32(0), a.Gas.Uniform(scene.TimeUniform))

	a.Config.AnimateGas = true
	require.NoError(t, a.Step(now.Add(3*time.Second)))
	assert.Equal(t, float32(3), a.Gas.Uniform(scene.TimeUniform))
}

// testHost closes after a number of polls.
type testHost struct {
	polls, closeAfter int
}

func (th *testHost) PollEvents() bool {
	th.polls++
	return th.polls <= th.closeAfter
}

func TestRun(t *testing.T) {
	a, td := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	a.Config.Window.FPS = 1000
	ran := 0
	a.Queue.Post(func() { ran++ })
	require.NoError(t, a.Run(context.Background(), &testHost{closeAfter: 3}))
	assert.Equal(t, 3, td.renders)
	assert.Equal(t, 1, ran)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx, &testHost{closeAfter: 100}))
}

// testAssets returns a file system with a baked texture and a model
// with meshes named Circle, Body and Ring.
func testAssets(t *testing.T) fstest.MapFS {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	var pb bytes.Buffer
	require.NoError(t, png.Encode(&pb, img))

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	doc.Meshes = []*gltf.Mesh{{Name: "tri", Primitives: []*gltf.Primitive{
		{Attributes: map[string]int{gltf.POSITION: pos}},
	}}}
	for i, nm := range []string{"Circle", "Body", "Ring"} {
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: nm, Mesh: gltf.Index(0)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, i)
	}
	var gb bytes.Buffer
	enc := gltf.NewEncoder(&gb)
	enc.AsBinary = true
	require.NoError(t, enc.Encode(doc))

	return fstest.MapFS{
		"assets/baked-l.jpg": {Data: pb.Bytes()},
		"assets/planets.glb": {Data: gb.Bytes()},
	}
}

func TestLoadAssets(t *testing.T) {
	captureLogs(t)
	a, td := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	ld := assets.NewLoader(testAssets(t), a.Queue)
	a.LoadAssets(context.Background(), ld)
	ld.Wait()

	require.NoError(t, a.Step(time.Now()))
	assert.Equal(t, 0, td.meshes, "nothing is added before completions run")

	assert.Equal(t, 3, a.Queue.Drain())
	require.NotNil(t, a.Model)
	require.NotNil(t, a.Textured.Map)
	assert.Equal(t, "assets/baked-l.jpg", a.Textured.Map.Name)
	assert.Equal(t, 0, a.Gas.Version, "built-in shaders are unchanged")
	assert.Equal(t, 2, a.Scene.NumChildren())

	var names []string
	for _, ms := range scene.Meshes(a.Model) {
		names = append(names, ms.Name)
		if ms.Name == "Circle" {
			assert.Same(t, a.Gas, ms.Material)
		} else {
			assert.Same(t, a.Textured, ms.Material)
		}
	}
	assert.Equal(t, []string{"Circle", "Body", "Ring"}, names)

	require.NoError(t, a.Step(time.Now()))
	assert.Equal(t, 3, td.meshes)
}

func TestLoadAssetsMissing(t *testing.T) {
	logs := captureLogs(t)
	a, _ := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	fsys := testAssets(t)
	delete(fsys, "assets/planets.glb")
	ld := assets.NewLoader(fsys, a.Queue)
	before := a.Scene.NumChildren()
	a.LoadAssets(context.Background(), ld)
	ld.Wait()
	a.Queue.Drain()

	assert.Nil(t, a.Model)
	assert.Equal(t, before, a.Scene.NumChildren())
	assert.Equal(t, 1, logs.count(slog.LevelError))
	assert.NotNil(t, a.Textured.Map)
}

func TestShadersLoaded(t *testing.T) {
	a, _ := newTestApp(Viewport{Size: image.Pt(800, 600), DevicePixelRatio: 1})
	a.ShadersLoaded(DefaultGasShaders(), nil)
	assert.Equal(t, 0, a.Gas.Version)
	a.ShadersLoaded(assets.ShaderSource{Vertex: "// v", Fragment: "// f"}, nil)
	assert.Equal(t, 1, a.Gas.Version)
	assert.Equal(t, "// v", a.Gas.VertexShader)
}
