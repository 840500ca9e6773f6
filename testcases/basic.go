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

var basicCases = []TestCase{
	{
		Name: "single_peak",
		Data: [][]float64{
			{0, 0, 0},
			{0, 10, 0},
			{0, 0, 0},
		},
		Levels:   []float64{5, 0, 9.99, 10, -3, 12},
		SubPaths: []int{1, 1, 1, 0, 0, 0},
	},
	{
		// The ring of high samples touches the border, so the outer
		// loop runs through the guard cells.
		Name: "single_pit",
		Data: [][]float64{
			{10, 10, 10},
			{10, 0, 10},
			{10, 10, 10},
		},
		Levels:   []float64{5},
		SubPaths: []int{2},
	},
	{
		Name: "ramp",
		Data: [][]float64{
			{0, 1},
			{0, 1},
		},
		Levels:   []float64{0.5, 0, 1},
		SubPaths: []int{1, 1, 0},
	},
	{
		Name: "plateau",
		Data: [][]float64{
			{1, 2},
			{3, 4},
		},
		Levels:   []float64{5, 10, -5},
		SubPaths: []int{0, 0, 0},
	},
}
