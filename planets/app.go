// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planets is a viewer for a planetary model: a baked-texture
// model with a shader-driven gas surface, drawn with a damped orbit
// camera. [App] holds all of the state shared by the asset loaders,
// the render loop and the resize handler.
package planets

import (
	"context"
	"embed"
	"image"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/planets/assets"
	"cogentcore.org/planets/orbit"
	"cogentcore.org/planets/scene"
)

//go:embed shaders/gas/*.wgsl
var gasShaders embed.FS

// GasMaterial is the name of the gas shader material.
const GasMaterial = "gas"

// DefaultGasShaders returns the built-in gas shader sources.
func DefaultGasShaders() assets.ShaderSource {
	return assets.ShaderSource{
		Vertex:   string(errors.Log1(gasShaders.ReadFile("shaders/gas/vertex.wgsl"))),
		Fragment: string(errors.Log1(gasShaders.ReadFile("shaders/gas/fragment.wgsl"))),
	}
}

// Drawer draws a scene. It is implemented by [render.Renderer].
type Drawer interface {

	// SetSize sets the output size in logical pixels.
	SetSize(size image.Point)

	// SetPixelRatio sets the ratio of physical to logical pixels.
	SetPixelRatio(ratio float32)

	// Render draws the scene from the camera.
	Render(sc *scene.Scene, cam *scene.Camera) error
}

// Host is the window system that owns frame scheduling and input.
type Host interface {

	// PollEvents processes pending window events, including input and
	// resize callbacks. It returns false once the window is closed.
	PollEvents() bool
}

// App is the application context for the viewer.
type App struct {

	// Config is the configuration.
	Config *Config

	// Scene is the root of the scene graph.
	Scene *scene.Scene

	// Camera is the camera, which is also a child of Scene.
	Camera *scene.Camera

	// Controls are the orbit controls moving Camera.
	Controls *orbit.Controls

	// Drawer draws the scene.
	Drawer Drawer

	// Viewport is the current viewport.
	Viewport Viewport

	// Textured is the flat textured material shared by all meshes
	// other than the gas meshes. Its map is set when the texture loads.
	Textured *scene.BasicMaterial

	// Gas is the shader material shared by all gas meshes.
	Gas *scene.ShaderMaterial

	// Model is the root of the loaded model, nil until it has loaded.
	Model *scene.Group

	// Queue runs load completions on the render loop goroutine.
	Queue *assets.Queue

	// start is the time of the first frame.
	start time.Time
}

// NewApp returns a new app with the given configuration, drawer and
// initial viewport. The camera is placed in the scene, and the drawer
// is configured for the viewport.
func NewApp(cfg *Config, drawer Drawer, vp Viewport) *App {
	a := &App{Config: cfg, Drawer: drawer, Viewport: vp, Queue: &assets.Queue{}}
	a.Scene = scene.NewScene()

	cc := &cfg.Camera
	a.Camera = scene.NewCamera(cc.FOV, vp.Aspect(), cc.Near, cc.Far)
	a.Camera.SetPosition(cc.Position.X, cc.Position.Y, cc.Position.Z)
	a.Scene.Add(a.Camera)

	ctl := orbit.New(a.Camera)
	ctl.EnableDamping = cfg.Controls.Damping
	ctl.DampingFactor = cfg.Controls.DampingFactor
	ctl.RotateSpeed = cfg.Controls.RotateSpeed
	ctl.ZoomSpeed = cfg.Controls.ZoomSpeed
	ctl.PanSpeed = cfg.Controls.PanSpeed
	ctl.MinDistance = cfg.Controls.MinDistance
	ctl.MaxDistance = cfg.Controls.MaxDistance
	ctl.Size = vp.Size
	a.Controls = ctl

	a.Textured = scene.NewBasicMaterial(nil)
	gs := DefaultGasShaders()
	a.Gas = scene.NewShaderMaterial(GasMaterial, gs.Vertex, gs.Fragment)

	drawer.SetSize(vp.Size)
	drawer.SetPixelRatio(a.PixelRatio())
	return a
}

// PixelRatio returns the pixel ratio applied to the drawer.
func (a *App) PixelRatio() float32 {
	return PixelRatio(a.Viewport.DevicePixelRatio, a.Config.Window.MaxPixelRatio)
}

// LoadAssets starts loading the texture, gas shaders and model with
// the given loader. Completions are posted to [App.Queue].
func (a *App) LoadAssets(ctx context.Context, ld *assets.Loader) {
	cfg := a.Config
	ld.LoadTexture(ctx, cfg.Texture, cfg.FlipY, a.TextureLoaded)
	ld.LoadShaders(ctx, cfg.GasVertex, cfg.GasFragment, DefaultGasShaders(), a.ShadersLoaded)
	ld.LoadModel(ctx, cfg.Model, a.ModelLoaded)
}

// NewLoader returns a loader for files under [Config.Root] that
// posts to [App.Queue].
func (a *App) NewLoader() *assets.Loader {
	return assets.NewLoader(os.DirFS(a.Config.Root), a.Queue)
}

// WatchShaders reloads the gas shaders whenever their files change.
func (a *App) WatchShaders() (*assets.ShaderWatcher, error) {
	cfg := a.Config
	return assets.WatchShaders(cfg.Root, cfg.GasVertex, cfg.GasFragment, a.Queue, func(src assets.ShaderSource) {
		a.ShadersLoaded(src, nil)
	})
}

// ModelLoaded is the completion for the model load. On success, the
// loaded meshes are given their materials and the model is added to
// the scene. On failure the error is logged and the scene is unchanged.
func (a *App) ModelLoaded(root *scene.Group, err error) {
	if err != nil {
		slog.Error("failed to load model", "err", err)
		return
	}
	if a.Model != nil {
		slog.Warn("model already loaded", "name", a.Model.Name)
		return
	}
	gasN, texN := AssignMaterials(root, a.Config.GasMesh, a.Gas, a.Textured)
	slog.Info("loaded model", "name", root.Name, "gas", gasN, "textured", texN, "hierarchy", "\n"+scene.Dump(root))
	a.Scene.Add(root)
	a.Model = root
}

// TextureLoaded is the completion for the texture load. On success the
// texture becomes the map of the textured material. On failure the
// error is logged and meshes draw untextured.
func (a *App) TextureLoaded(tex *scene.Texture, err error) {
	if err != nil {
		slog.Error("failed to load texture", "err", err)
		return
	}
	slog.Info("loaded texture", "name", tex.Name, "size", tex.RGBA.Bounds().Size())
	a.Textured.Map = tex
}

// ShadersLoaded is the completion for the gas shader load and reload.
func (a *App) ShadersLoaded(src assets.ShaderSource, err error) {
	if err != nil {
		slog.Error("failed to load gas shaders", "err", err)
		return
	}
	if src.Vertex == a.Gas.VertexShader && src.Fragment == a.Gas.FragmentShader {
		return
	}
	a.Gas.SetShaders(src.Vertex, src.Fragment)
}

// Step runs one frame at the given time: the controls are updated,
// then the scene is drawn once.
func (a *App) Step(now time.Time) error {
	if a.start.IsZero() {
		a.start = now
	}
	a.Controls.Update()
	if a.Config.AnimateGas {
		a.Gas.SetUniform(scene.TimeUniform, float32(now.Sub(a.start).Seconds()))
	}
	return a.Drawer.Render(a.Scene, a.Camera)
}

// Resize updates the camera projection, the controls and the drawer
// for the given viewport. A viewport with no area is ignored.
func (a *App) Resize(vp Viewport) {
	if vp.Size.X <= 0 || vp.Size.Y <= 0 {
		return
	}
	slog.Debug("resize", "size", vp.Size, "devicePixelRatio", vp.DevicePixelRatio)
	a.Viewport = vp
	a.Camera.SetAspect(vp.Size.X, vp.Size.Y)
	a.Controls.Size = vp.Size
	a.Drawer.SetSize(vp.Size)
	a.Drawer.SetPixelRatio(a.PixelRatio())
}

// Run runs the render loop until the host window is closed or ctx is
// done. Each frame polls host events, runs pending load completions,
// and then calls [App.Step].
func (a *App) Run(ctx context.Context, host Host) error {
	fps := max(a.Config.Window.FPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if !host.PollEvents() {
				return nil
			}
			a.Queue.Drain()
			errors.Log(a.Step(now))
		}
	}
}
