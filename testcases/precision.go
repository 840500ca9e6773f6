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

var precisionCases = []TestCase{
	{
		// Four samples lie exactly on the isovalue, so the crossings
		// coincide with sample positions.
		Name: "exact_level_samples",
		Data: [][]float64{
			{0, 5, 0},
			{5, 10, 5},
			{0, 5, 0},
		},
		Levels:   []float64{5},
		SubPaths: []int{1},
	},
	{
		Name: "large_offset",
		Data: [][]float64{
			{1e6, 1e6 + 1, 1e6},
			{1e6 + 2, 1e6 + 3, 1e6 + 2},
			{1e6, 1e6 + 1, 1e6},
		},
		Levels:   []float64{1e6 + 1.5, 1e6 + 2.5},
		SubPaths: []int{1, 1},
	},
}
