// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window provides a desktop GLFW window with a WebGPU surface,
// forwarding pointer input to orbit controls and size changes to a
// [planets.App]. It must be used on the main thread.
package window

import (
	"image"
	"log/slog"

	"cogentcore.org/core/gpu"
	"cogentcore.org/planets/orbit"
	"cogentcore.org/planets/planets"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window that implements [planets.Host].
type Window struct {

	// Glfw is the underlying window.
	Glfw *glfw.Window

	// Surface is the WebGPU surface of the window,
	// to be wrapped by a [gpu.Surface].
	Surface *wgpu.Surface

	// app receives input and resize events, once bound.
	app *planets.App

	// cursor is the last cursor position in logical pixels.
	cursor image.Point
}

// New initializes GLFW and opens a new window with the given title and
// size in logical pixels.
func New(title string, size image.Point) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	gw, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	w := &Window{Glfw: gw}
	w.Surface = gpu.Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(gw))
	return w, nil
}

// Viewport returns the current logical size of the window, and the
// ratio of framebuffer pixels to logical pixels.
func (w *Window) Viewport() planets.Viewport {
	width, height := w.Glfw.GetSize()
	fbw, _ := w.Glfw.GetFramebufferSize()
	return viewport(width, height, fbw)
}

func viewport(width, height, fbWidth int) planets.Viewport {
	vp := planets.Viewport{Size: image.Pt(width, height), DevicePixelRatio: 1}
	if width > 0 && fbWidth > 0 {
		vp.DevicePixelRatio = float32(fbWidth) / float32(width)
	}
	return vp
}

// Bind sends input events to the controls of the given app,
// and size changes to [planets.App.Resize].
func (w *Window) Bind(a *planets.App) {
	w.app = a
	resize := func() {
		a.Resize(w.Viewport())
	}
	w.Glfw.SetSizeCallback(func(gw *glfw.Window, width, height int) {
		resize()
	})
	w.Glfw.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		resize()
	})
	w.Glfw.SetContentScaleCallback(func(gw *glfw.Window, x, y float32) {
		slog.Debug("content scale changed", "x", x, "y", y)
		resize()
	})
	w.Glfw.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			a.Controls.PointerDown(orbitButton(button), w.cursor)
		case glfw.Release:
			a.Controls.PointerUp()
		}
	})
	w.Glfw.SetCursorPosCallback(func(gw *glfw.Window, x, y float64) {
		w.cursor = image.Pt(int(x), int(y))
		a.Controls.PointerMove(w.cursor)
	})
	w.Glfw.SetScrollCallback(func(gw *glfw.Window, xoff, yoff float64) {
		a.Controls.Wheel(-float32(yoff))
	})
}

// orbitButton returns the orbit controls button for the given mouse button.
func orbitButton(button glfw.MouseButton) orbit.Buttons {
	switch button {
	case glfw.MouseButtonLeft:
		return orbit.Left
	case glfw.MouseButtonMiddle:
		return orbit.Middle
	case glfw.MouseButtonRight:
		return orbit.Right
	}
	return orbit.NoButton
}

// PollEvents processes pending events, returning false once the
// window has been asked to close.
func (w *Window) PollEvents() bool {
	if w.Glfw.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// Release destroys the window and terminates GLFW. The surface is
// released by the [gpu.Surface] that wraps it.
func (w *Window) Release() {
	w.Glfw.Destroy()
	glfw.Terminate()
}
