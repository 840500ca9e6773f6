// seehuhn.de/go/contour - isolines of two-dimensional scalar fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package parallel provides the worker pool used to compute contours for
// several isovalues at once.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolClosed is returned by Run after Close has been called.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// Pool is a fixed set of worker goroutines.
//
// Tasks submitted by Run are executed by the workers in submission order.
// Run must not be called from inside a task, since a saturated pool would
// then wait for itself.
//
// A Pool is safe for concurrent use.
type Pool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup

	// mu is held for reading while a batch is submitted, and for writing
	// while the task channel is closed.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given number of workers.  If workers is
// zero or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), 2*workers),
	}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run calls fn(ctx, i) for i = 0, ..., n-1 on the workers and waits for
// all calls to return.
//
// The first error returned by fn cancels the context passed to the
// remaining calls, and calls which have not started yet are skipped.  Run
// returns this first error.  If the parent context is cancelled, Run
// returns the context's error.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	if n <= 0 {
		return nil
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel(err)
		})
	}

	wg.Add(n)
	for i := range n {
		p.tasks <- func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			if err := fn(ctx, i); err != nil {
				fail(err)
			}
		}
	}
	wg.Wait()

	return firstErr
}

// Close stops the workers after all submitted tasks have finished.  It
// waits for running batches to complete.  Calling Close more than once
// has no effect.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
