// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// ShaderSource is the WGSL source of a vertex and fragment shader pair.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// ReadShaders reads the named vertex and fragment shader sources from
// fsys. A name that is empty or does not exist in fsys yields the
// corresponding source in fallback, if it is not empty.
func ReadShaders(fsys fs.FS, vertex, fragment string, fallback ShaderSource) (ShaderSource, error) {
	var src ShaderSource
	var err error
	src.Vertex, err = readShader(fsys, vertex, fallback.Vertex)
	if err != nil {
		return src, err
	}
	src.Fragment, err = readShader(fsys, fragment, fallback.Fragment)
	return src, err
}

func readShader(fsys fs.FS, name, fallback string) (string, error) {
	if name == "" {
		if fallback == "" {
			return "", errors.New("no shader name and no fallback source")
		}
		return fallback, nil
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if fallback != "" && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("using built-in shader", "name", name)
			return fallback, nil
		}
		return "", err
	}
	return string(b), nil
}

// ShaderWatcher watches a vertex and fragment shader file pair on disk,
// and posts the new sources to a [Queue] whenever either changes.
type ShaderWatcher struct {

	// Dir is the directory that shader names are relative to.
	Dir string

	// Vertex and Fragment are the shader file names, relative to Dir.
	Vertex, Fragment string

	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// WatchShaders starts watching the given vertex and fragment shader
// files in dir. On every write to either file, both are read again and
// onChange is posted to q with the result. Read errors are logged and
// do not stop the watcher.
func WatchShaders(dir, vertex, fragment string, q *Queue, onChange func(src ShaderSource)) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	sw := &ShaderWatcher{Dir: dir, Vertex: vertex, Fragment: fragment, watcher: w}
	targets := map[string]bool{}
	dirs := map[string]bool{}
	for _, nm := range []string{vertex, fragment} {
		fp := filepath.Clean(filepath.Join(dir, filepath.FromSlash(nm)))
		targets[fp] = true
		dirs[filepath.Dir(fp)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, err
		}
	}
	fsys := os.DirFS(dir)
	sw.wg.Add(1)
	go func() {
		defer sw.wg.Done()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if !targets[filepath.Clean(ev.Name)] {
					continue
				}
				src, err := ReadShaders(fsys, vertex, fragment, ShaderSource{})
				if errors.Log(err) != nil {
					continue
				}
				slog.Info("shader changed", "file", ev.Name)
				q.Post(func() {
					onChange(src)
				})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return sw, nil
}

// Close stops watching and waits for the watch goroutine to finish.
func (sw *ShaderWatcher) Close() error {
	err := sw.watcher.Close()
	sw.wg.Wait()
	return err
}
