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

// Package contour extracts isolines from rectangular two-dimensional
// scalar fields, using the marching squares algorithm.
//
// A [Field] holds the samples.  For every isovalue, the 2×2 neighbourhoods
// of the field are classified into a [Grid] of cells, and the grid is then
// traced into closed sub-paths.  Regions above the isovalue are outlined
// counter-clockwise and holes clockwise, in a frame where x is the column
// index and y the row index of the field.  The two ambiguous saddle cases
// are resolved using the average of the four corner samples.
//
// [Engine] computes contours for many isovalues concurrently and returns
// them as path.Data values:
//
//	f, err := contour.NewField(samples)
//	if err != nil {
//	    return err
//	}
//	e := contour.NewEngine(f, nil)
//	defer e.Close()
//	paths, err := e.Contours(ctx, []float64{1, 5, 3})
//
// Callers which need a different representation can implement [Builder]
// and use [Engine.ContoursInto] or [Trace].
package contour
