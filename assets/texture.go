// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/planets/scene"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
)

// ReadTexture reads the named image from fsys as a texture.
// If flipY is set the rows are flipped so that the first row
// is the bottom of the image.
func ReadTexture(fsys fs.FS, name string, flipY bool) (*scene.Texture, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(b) {
		kind, _ := filetype.Match(b)
		return nil, fmt.Errorf("not an image file (detected type: %s)", kind.Extension)
	}
	img, _, err := imagex.Read(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	var rgba *image.RGBA
	if flipY {
		rgba = transform.FlipV(img)
	} else {
		rgba = imagex.CloneAsRGBA(img)
	}
	tex := scene.NewTexture(name, rgba)
	tex.FlipY = flipY
	return tex, nil
}
