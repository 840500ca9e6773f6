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

var ctmCases = []TestCase{
	{
		Name: "scaled_peak",
		Data: [][]float64{
			{0, 0, 0},
			{0, 10, 0},
			{0, 0, 0},
		},
		Levels:   []float64{5},
		SubPaths: []int{1},
		CTM:      matrix.Matrix{10, 0, 0, 10, 5, 5},
	},
	{
		// Rows grow downwards, as in an image.
		Name:     "flipped_peaks",
		Data:     manyPeaks(2, 3),
		Levels:   []float64{2, 7},
		SubPaths: []int{6, 6},
		CTM:      matrix.Matrix{8, 0, 0, -8, 4, 44},
	},
}
