// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	"log/slog"

	"cogentcore.org/planets/scene"
)

// AssignMaterials assigns the gas material to every mesh at or below
// root whose name equals gasName exactly, and the textured material
// to every other mesh. It returns the number of meshes given each.
func AssignMaterials(root scene.Node, gasName string, gas, textured scene.Material) (gasN, texturedN int) {
	for _, ms := range scene.Meshes(root) {
		if ms.Name == gasName {
			ms.Material = gas
			gasN++
		} else {
			ms.Material = textured
			texturedN++
		}
		slog.Info("mesh", "name", ms.Name, "material", ms.Material.MaterialKind())
	}
	return
}
