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

package testcases

import "seehuhn.de/go/geom/matrix"

// TestCase defines a field together with the isovalues to contour.
type TestCase struct {
	Name   string      // lowercase a-z and _ only
	Data   [][]float64 // samples, Data[row][col]
	Levels []float64   // isovalues to trace

	// SubPaths gives the expected number of closed sub-paths for each
	// isovalue.  Nil means that the count is not checked.
	SubPaths []int

	// CTM maps field coordinates to output coordinates (zero-value means
	// no transform).
	CTM matrix.Matrix
}

// grid builds a rows×cols field filled with fill.
func grid(rows, cols int, fill float64) [][]float64 {
	data := make([][]float64, rows)
	for r := range data {
		row := make([]float64, cols)
		for c := range row {
			row[c] = fill
		}
		data[r] = row
	}
	return data
}
