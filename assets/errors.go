// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

//go:generate core generate

import (
	"fmt"
)

// AssetKinds are the kinds of assets that can be loaded.
type AssetKinds int32 //enums:enum -trim-prefix Asset

const (
	// AssetTexture is a color image.
	AssetTexture AssetKinds = iota

	// AssetModel is a glTF or GLB model.
	AssetModel

	// AssetShader is WGSL shader source text.
	AssetShader
)

// LoadError is the error for any failed asset load: missing file,
// I/O failure, or invalid contents. Err is the underlying error,
// unmodified.
type LoadError struct {

	// Kind of asset.
	Kind AssetKinds

	// Name of the asset in the loader file system.
	Name string

	// ID of the load request, for correlating log lines.
	ID string

	// Err is the underlying error.
	Err error
}

func (le *LoadError) Error() string {
	return fmt.Sprintf("assets: loading %s %q: %v", le.Kind, le.Name, le.Err)
}

func (le *LoadError) Unwrap() error { return le.Err }
