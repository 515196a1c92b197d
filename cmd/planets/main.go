// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command planets renders a planetary model with a shader-driven gas
// surface, with a damped orbit camera.
package main

import (
	"context"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/gpu"
	"cogentcore.org/planets/planets"
	"cogentcore.org/planets/render"
	"cogentcore.org/planets/window"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("planets", "Planets renders a planetary model with a shader-driven gas surface.")
	opts.DefaultFiles = []string{"planets.toml"}
	cfg := planets.NewConfig()
	if _, err := cli.Config(opts, cfg); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
	logx.UserLevel = cfg.LogLevel()
	logx.SetDefaultLogger()
	if err := run(cfg); err != nil {
		slog.Error("planets", "err", err)
		os.Exit(1)
	}
}

// run opens the window, sets up the GPU and the app, starts loading
// the assets, and runs the render loop until the window is closed.
func run(cfg *planets.Config) error {
	win, err := window.New(cfg.Window.Title, image.Pt(cfg.Window.Width, cfg.Window.Height))
	if err != nil {
		return err
	}
	defer win.Release()

	gp := gpu.NewGPU()
	gp.Config("planets")
	defer gp.Release()

	vp := win.Viewport()
	ratio := planets.PixelRatio(vp.DevicePixelRatio, cfg.Window.MaxPixelRatio)
	sf := gpu.NewSurface(gp, win.Surface, render.PhysicalSize(vp.Size, ratio), cfg.Window.Samples, gpu.Depth32)
	defer sf.Release()

	rd := render.NewRenderer(gp, sf, vp.Size, ratio)
	defer rd.Release()

	a := planets.NewApp(cfg, rd, vp)
	win.Bind(a)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	a.LoadAssets(ctx, a.NewLoader())
	if cfg.WatchShaders {
		if sw, err := a.WatchShaders(); errors.Log(err) == nil {
			defer sw.Close()
		}
	}
	return a.Run(ctx, win)
}
