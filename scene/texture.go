// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
)

// Texture is a color image used as a material map.
// It uses an [image.RGBA] as the underlying storage to
// facilitate upload to the GPU.
type Texture struct {

	// Name is the name of the texture, typically its file name.
	Name string

	// FlipY records whether the rows were flipped vertically at load
	// time to match the UV convention of the model.
	FlipY bool

	// RGBA is the image data.
	RGBA *image.RGBA

	// Version is incremented whenever RGBA changes, so that the
	// renderer knows to upload it again.
	Version int
}

// NewTexture returns a new texture with the given name and image.
func NewTexture(name string, img *image.RGBA) *Texture {
	return &Texture{Name: name, RGBA: img, Version: 1}
}

// SetImage replaces the image and bumps the Version.
func (tx *Texture) SetImage(img *image.RGBA) {
	tx.RGBA = img
	tx.Version++
}
