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

package contour

import (
	"context"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/contour/internal/parallel"
)

// Options configures an Engine.
type Options struct {
	// Workers is the number of isovalues processed concurrently.  Zero or
	// a negative value means GOMAXPROCS.
	Workers int

	// Transform maps field coordinates to the coordinates of the returned
	// paths.  The zero value means no transformation.
	Transform matrix.Matrix

	// Isolate keeps the failure of one isovalue from cancelling the
	// others.  Contours then returns all paths which could be computed,
	// together with a LevelErrors value describing the failures.  By
	// default, the first failure cancels the whole batch.
	Isolate bool
}

// Engine computes contours of one field for many isovalues.  Each isovalue
// is classified and traced on its own grid, on a worker pool owned by the
// Engine.
//
// An Engine is safe for concurrent use.  Close must be called to stop the
// worker goroutines.
type Engine struct {
	field *Field
	opts  Options
	pool  *parallel.Pool
}

// NewEngine returns an Engine for the field f.  If opts is nil, default
// options are used.
func NewEngine(f *Field, opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}
	return &Engine{
		field: f,
		opts:  *opts,
		pool:  parallel.NewPool(opts.Workers),
	}
}

// Field returns the field the engine was created for.
func (e *Engine) Field() *Field {
	return e.field
}

// Close stops the worker pool.  Calls to Contours after Close fail.
func (e *Engine) Close() {
	e.pool.Close()
}

// Contours computes one path per isovalue.  The i-th path belongs to
// levels[i], independently of the order in which the isovalues complete.
// A path without any sub-path means that the isovalue is not crossed.
//
// Non-finite isovalues are rejected with ErrNonFinite before any work
// starts.  The failure of an isovalue is reported as a *LevelError; see
// Options.Isolate for how failures affect the other isovalues.
func (e *Engine) Contours(ctx context.Context, levels []float64) ([]*path.Data, error) {
	paths := make([]*path.Data, len(levels))
	err := e.run(ctx, levels, func(ctx context.Context, i int) error {
		b := NewPathBuilder(e.opts.Transform)
		if err := e.contour(ctx, levels[i], b); err != nil {
			return err
		}
		paths[i] = b.Data()
		return nil
	})
	if err != nil && !e.opts.Isolate {
		return nil, err
	}
	return paths, err
}

// ContoursInto traces the contour for levels[i] into the builder returned
// by newBuilder(i, levels[i]).  Each builder is used by a single goroutine
// only.  Options.Transform is not applied.
func (e *Engine) ContoursInto(ctx context.Context, levels []float64, newBuilder func(i int, level float64) Builder) error {
	return e.run(ctx, levels, func(ctx context.Context, i int) error {
		return e.contour(ctx, levels[i], newBuilder(i, levels[i]))
	})
}

// run validates the isovalues and executes task for each of them on the
// pool.  Errors returned by task are wrapped into a *LevelError.
func (e *Engine) run(ctx context.Context, levels []float64, task func(ctx context.Context, i int) error) error {
	for i, level := range levels {
		if math.IsNaN(level) || math.IsInf(level, 0) {
			return fmt.Errorf("%w (level #%d is %g)", ErrNonFinite, i, level)
		}
	}

	wrapped := func(ctx context.Context, i int) error {
		err := task(ctx, i)
		if err == nil {
			return nil
		}
		Logger().Error("contour failed", "index", i, "level", levels[i], "err", err)
		return &LevelError{Index: i, Level: levels[i], Err: err}
	}

	if !e.opts.Isolate {
		return e.pool.Run(ctx, len(levels), wrapped)
	}

	errs := make([]*LevelError, len(levels))
	err := e.pool.Run(ctx, len(levels), func(ctx context.Context, i int) error {
		if err := wrapped(ctx, i); err != nil {
			errs[i] = err.(*LevelError)
		}
		return nil
	})
	if err != nil {
		return err
	}
	var failed LevelErrors
	for _, le := range errs {
		if le != nil {
			failed = append(failed, le)
		}
	}
	if len(failed) > 0 {
		return failed
	}
	return nil
}

// contour builds the grid for one isovalue and traces it into b.
func (e *Engine) contour(ctx context.Context, level float64, b Builder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g := NewGrid(e.field, level)
	return traceGrid(ctx, g, b)
}

// Contour computes the contour of f for a single isovalue, without using a
// worker pool.  Points are given in field coordinates.
func Contour(f *Field, level float64) (*path.Data, error) {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return nil, fmt.Errorf("%w (level is %g)", ErrNonFinite, level)
	}
	b := NewPathBuilder(matrix.Matrix{})
	if err := Trace(NewGrid(f, level), b); err != nil {
		return nil, err
	}
	return b.Data(), nil
}
