// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads textures, glTF models and shader sources
// asynchronously from a file system, delivering each result to a
// completion function on the main thread through a [Queue].
package assets

import (
	"context"
	"io/fs"
	"log/slog"
	"sync"

	"cogentcore.org/planets/scene"
	"github.com/google/uuid"
)

// Loader loads assets from FS in background goroutines. Completion
// functions are posted to Queue, so they run on whichever goroutine
// drains it. There is no timeout and no retry: a load that never
// finishes never calls its completion function.
type Loader struct {

	// FS is the file system that asset names are resolved in.
	FS fs.FS

	// Queue receives completion functions.
	Queue *Queue

	wg sync.WaitGroup
}

// NewLoader returns a new [Loader] for the given file system and queue.
func NewLoader(fsys fs.FS, q *Queue) *Loader {
	return &Loader{FS: fsys, Queue: q}
}

// Wait blocks until all loads started so far have posted their results.
func (ld *Loader) Wait() {
	ld.wg.Wait()
}

// LoadTexture loads the named image as a texture, flipping it
// vertically if flipY is set, and posts done with the result.
func (ld *Loader) LoadTexture(ctx context.Context, name string, flipY bool, done func(tex *scene.Texture, err error)) {
	load(ctx, ld, AssetTexture, name, func() (*scene.Texture, error) {
		return ReadTexture(ld.FS, name, flipY)
	}, done)
}

// LoadModel loads the named glTF or GLB file and posts done with the
// root group of its default scene.
func (ld *Loader) LoadModel(ctx context.Context, name string, done func(root *scene.Group, err error)) {
	load(ctx, ld, AssetModel, name, func() (*scene.Group, error) {
		return ReadModel(ld.FS, name)
	}, done)
}

// LoadShaders loads the named vertex and fragment shader sources and
// posts done with both. An empty name yields the matching fallback.
func (ld *Loader) LoadShaders(ctx context.Context, vertex, fragment string, fallback ShaderSource, done func(src ShaderSource, err error)) {
	load(ctx, ld, AssetShader, vertex+","+fragment, func() (ShaderSource, error) {
		return ReadShaders(ld.FS, vertex, fragment, fallback)
	}, done)
}

// load runs fun in a new goroutine and posts done with its result,
// wrapping any error in a [LoadError]. Results of loads whose context
// is canceled by the time they finish are dropped.
func load[T any](ctx context.Context, ld *Loader, kind AssetKinds, name string, fun func() (T, error), done func(T, error)) {
	id := uuid.NewString()
	slog.Debug("loading asset", "kind", kind, "name", name, "id", id)
	ld.wg.Add(1)
	go func() {
		defer ld.wg.Done()
		val, err := fun()
		if err != nil {
			err = &LoadError{Kind: kind, Name: name, ID: id, Err: err}
		} else {
			slog.Debug("loaded asset", "kind", kind, "name", name, "id", id)
		}
		if ctx.Err() != nil {
			return
		}
		ld.Queue.Post(func() {
			done(val, err)
		})
	}()
}
