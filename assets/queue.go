// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"sync"
)

// Queue holds functions posted from loader goroutines, to be run on
// the main thread by [Queue.Drain] between frames. This keeps a single
// writer on the scene graph without locking it.
type Queue struct {
	mu    sync.Mutex
	funcs []func()
}

// Post adds the given function to the queue. It is safe to call
// from any goroutine.
func (q *Queue) Post(fun func()) {
	q.mu.Lock()
	q.funcs = append(q.funcs, fun)
	q.mu.Unlock()
}

// Len returns the number of pending functions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.funcs)
}

// Drain runs all pending functions in the order posted, on the
// calling goroutine, and returns how many ran. Functions posted
// while draining run on the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	funcs := q.funcs
	q.funcs = nil
	q.mu.Unlock()
	for _, fun := range funcs {
		fun()
	}
	return len(funcs)
}
