// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	"image"
)

// Viewport is the size of the drawing surface in logical pixels,
// and the ratio of physical to logical pixels reported by the display.
type Viewport struct {
	Size             image.Point
	DevicePixelRatio float32
}

// Aspect returns the width / height aspect ratio, or 1 if the
// height is not positive.
func (vp Viewport) Aspect() float32 {
	if vp.Size.Y <= 0 {
		return 1
	}
	return float32(vp.Size.X) / float32(vp.Size.Y)
}

// PixelRatio returns the pixel ratio to render with: the device
// pixel ratio, capped at maxRatio.
func PixelRatio(devicePixelRatio, maxRatio float32) float32 {
	return min(devicePixelRatio, maxRatio)
}
