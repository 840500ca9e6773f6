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

var saddleCases = []TestCase{
	{
		// The centre average is 4.5: the two peaks join at level 4
		// and separate at level 5.
		Name: "diagonal_tl_br",
		Data: [][]float64{
			{0, 0, 0, 0},
			{0, 9, 0, 0},
			{0, 0, 9, 0},
			{0, 0, 0, 0},
		},
		Levels:   []float64{4, 5},
		SubPaths: []int{1, 2},
	},
	{
		Name: "diagonal_tr_bl",
		Data: [][]float64{
			{0, 0, 0, 0},
			{0, 0, 9, 0},
			{0, 9, 0, 0},
			{0, 0, 0, 0},
		},
		Levels:   []float64{4, 5},
		SubPaths: []int{1, 2},
	},
	{
		Name: "checkerboard",
		Data: [][]float64{
			{0, 0, 0, 0, 0},
			{0, 9, 0, 9, 0},
			{0, 0, 9, 0, 0},
			{0, 9, 0, 9, 0},
			{0, 0, 0, 0, 0},
		},
		Levels:   []float64{4, 5},
		SubPaths: []int{1, 5},
	},
}
