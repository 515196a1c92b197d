// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	"log/slog"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
)

// Config is the configuration for the planets viewer. It is set from
// `default:` tags, then an optional planets.toml file, then flags.
type Config struct {

	// Root is the directory that all asset paths are relative to.
	Root string `default:"."`

	// Texture is the baked texture image used by all meshes
	// other than the gas mesh.
	Texture string `default:"assets/baked-l.jpg"`

	// FlipY flips the texture vertically when loading it. glTF texture
	// coordinates have their origin at the top left, as images do,
	// so this is off for glTF models.
	FlipY bool

	// Model is the glTF or GLB model file.
	Model string `default:"assets/planets.glb"`

	// GasVertex is the vertex shader of the gas material.
	// The built-in shader is used if it does not exist.
	GasVertex string `default:"planets/shaders/gas/vertex.wgsl"`

	// GasFragment is the fragment shader of the gas material.
	// The built-in shader is used if it does not exist.
	GasFragment string `default:"planets/shaders/gas/fragment.wgsl"`

	// GasMesh is the exact, case-sensitive name of the meshes
	// that are drawn with the gas material.
	GasMesh string `default:"Circle"`

	// AnimateGas sets the uTime uniform of the gas material to the
	// elapsed seconds on every frame. Otherwise it stays at 0.
	AnimateGas bool

	// WatchShaders reloads the gas shaders whenever their files change.
	WatchShaders bool

	// Camera is the initial camera configuration.
	Camera CameraConfig

	// Controls configures the orbit controls.
	Controls ControlsConfig

	// Window configures the window and renderer.
	Window WindowConfig

	// Verbose prints informational log messages, including each mesh.
	Verbose bool `flag:"v,verbose"`

	// VeryVerbose prints debug log messages.
	VeryVerbose bool `flag:"vv,very-verbose"`

	// Quiet prints only errors.
	Quiet bool `flag:"q,quiet"`
}

// CameraConfig is the initial perspective camera.
type CameraConfig struct {

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"75"`

	// Near is the near clip plane distance.
	Near float32 `default:"1"`

	// Far is the far clip plane distance.
	Far float32 `default:"100"`

	// Position is the initial camera position. The camera looks at
	// the origin.
	Position math32.Vector3
}

// ControlsConfig configures [orbit.Controls].
type ControlsConfig struct {

	// Damping makes camera motion continue and decay after input stops.
	Damping bool `default:"true"`

	// DampingFactor is the fraction of pending motion applied per frame.
	DampingFactor float32 `default:"0.05"`

	// RotateSpeed scales rotation.
	RotateSpeed float32 `default:"1"`

	// ZoomSpeed scales wheel dolly steps.
	ZoomSpeed float32 `default:"1"`

	// PanSpeed scales panning.
	PanSpeed float32 `default:"1"`

	// MinDistance is the closest the camera may come to the target.
	MinDistance float32

	// MaxDistance is the farthest the camera may go from the target;
	// 0 means no limit.
	MaxDistance float32
}

// WindowConfig configures the window and renderer.
type WindowConfig struct {

	// Title of the window.
	Title string `default:"Planets"`

	// Width is the initial width in logical pixels.
	Width int `default:"1280"`

	// Height is the initial height in logical pixels.
	Height int `default:"720"`

	// FPS is the target number of frames per second.
	FPS int `default:"60"`

	// MaxPixelRatio caps the device pixel ratio used for rendering.
	MaxPixelRatio float32 `default:"2"`

	// Samples is the number of multisample anti-aliasing samples.
	Samples int `default:"4"`
}

// Defaults sets the fields that are not set by `default:` tags.
func (cfg *Config) Defaults() {
	if cfg.Camera.Position == (math32.Vector3{}) {
		cfg.Camera.Position.Set(6, 2, 10)
	}
}

// NewConfig returns a new [Config] with default values.
func NewConfig() *Config {
	cfg := &Config{}
	cli.SetFromDefaults(cfg)
	cfg.Defaults()
	return cfg
}

// LogLevel returns the log level for the verbosity flags. With no
// flag set, informational messages such as the loaded mesh names and
// model hierarchy are shown.
func (cfg *Config) LogLevel() slog.Level {
	if !cfg.VeryVerbose && !cfg.Verbose && !cfg.Quiet {
		return slog.LevelInfo
	}
	return logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
}
