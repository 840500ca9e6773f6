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

var subpathCases = []TestCase{
	{
		// At level 5, the left peak has a hole and the right peak is a
		// single sample.  At level 0.5 the hole is filled in.
		Name: "two_peaks_with_hole",
		Data: [][]float64{
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 9, 9, 9, 0, 0, 0, 0, 0},
			{0, 9, 1, 9, 0, 0, 9, 0, 0},
			{0, 9, 9, 9, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		Levels:   []float64{5, 0.5, 9},
		SubPaths: []int{3, 2, 0},
	},
	{
		Name: "nested_rings",
		Data: [][]float64{
			{0, 0, 0, 0, 0, 0, 0},
			{0, 5, 5, 5, 5, 5, 0},
			{0, 5, 0, 0, 0, 5, 0},
			{0, 5, 0, 9, 0, 5, 0},
			{0, 5, 0, 0, 0, 5, 0},
			{0, 5, 5, 5, 5, 5, 0},
			{0, 0, 0, 0, 0, 0, 0},
		},
		Levels:   []float64{3, 7, 1},
		SubPaths: []int{3, 1, 3},
	},
	{
		Name:     "many_peaks",
		Data:     manyPeaks(4, 4),
		Levels:   []float64{5},
		SubPaths: []int{16},
	},
}

// manyPeaks builds a field with rows×cols isolated peaks of height 9,
// separated by single rows and columns of zeros.
func manyPeaks(rows, cols int) [][]float64 {
	data := grid(2*rows+1, 2*cols+1, 0)
	for i := range rows {
		for j := range cols {
			data[2*i+1][2*j+1] = 9
		}
	}
	return data
}
