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
	"errors"
	"fmt"
	"strings"
)

// Input validation errors. All of them wrap ErrInvalidInput, so that callers
// can reject a request without distinguishing the individual cause.
var (
	// ErrInvalidInput is the common cause of all input validation errors.
	ErrInvalidInput = errors.New("contour: invalid input")

	// ErrFieldShape indicates a field with fewer than two rows or columns,
	// or with rows of differing lengths.
	ErrFieldShape = fmt.Errorf("%w: field must be a rectangle of at least 2x2 samples", ErrInvalidInput)

	// ErrNonFinite indicates a NaN or infinite sample or isovalue.
	ErrNonFinite = fmt.Errorf("%w: value is not finite", ErrInvalidInput)

	// ErrConstantField indicates that all samples are equal.
	ErrConstantField = fmt.Errorf("%w: cannot build contours for a constant field", ErrInvalidInput)
)

// ErrCorruptGrid is the cause of every CorruptGridError.  It signals an
// internal inconsistency and is never caused by bad input.
var ErrCorruptGrid = errors.New("contour: corrupt grid")

// CorruptGridError describes a tracing step which found the grid in a
// state that a correctly classified grid can never be in.
type CorruptGridError struct {
	Level    float64 // isovalue of the grid
	Row, Col int     // grid cell where tracing stopped
	Topology uint8   // topology of that cell, 0 if outside the grid
	Side     Side    // side used to enter the cell
	Reason   string
}

func (e *CorruptGridError) Error() string {
	return fmt.Sprintf("contour: corrupt grid at level %g, cell (%d,%d), topology %d, entered from %s: %s",
		e.Level, e.Row, e.Col, e.Topology, e.Side, e.Reason)
}

// Unwrap returns ErrCorruptGrid.
func (e *CorruptGridError) Unwrap() error { return ErrCorruptGrid }

// LevelError records the failure of the task for one isovalue.
type LevelError struct {
	Index int     // position of the isovalue in the request
	Level float64 // the isovalue
	Err   error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("contour: level #%d (%g): %v", e.Index, e.Level, e.Err)
}

// Unwrap returns the underlying error.
func (e *LevelError) Unwrap() error { return e.Err }

// LevelErrors collects the failed isovalues of a batch which was run with
// Options.Isolate set.  The entries are ordered by index.
type LevelErrors []*LevelError

func (e LevelErrors) Error() string {
	msgs := make([]string, len(e))
	for i, le := range e {
		msgs[i] = le.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap gives errors.Is and errors.As access to the individual failures.
func (e LevelErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, le := range e {
		errs[i] = le
	}
	return errs
}
