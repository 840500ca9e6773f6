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

import "math"

var largeCases = []TestCase{
	{
		Name:   "waves",
		Data:   waves(48, 64),
		Levels: []float64{-1.5, -1, -0.5, 0, 0.5, 1, 1.5},
	},
	{
		Name:   "bumps",
		Data:   bumps(64, 64),
		Levels: []float64{0.1, 0.25, 0.5, 0.75, 0.9},
	},
}

// waves builds a smooth field with many saddles.
func waves(rows, cols int) [][]float64 {
	data := grid(rows, cols, 0)
	for r := range rows {
		y := float64(r) / 5
		for c := range cols {
			x := float64(c) / 6
			data[r][c] = math.Sin(x)*math.Cos(y) + 0.5*math.Sin(0.7*x+1.3*y)
		}
	}
	return data
}

// bumps builds a field with a few Gaussian hills, one of which has a
// crater at its top.
func bumps(rows, cols int) [][]float64 {
	type bump struct{ r, c, h, w float64 }
	hills := []bump{
		{16, 16, 1, 6},
		{40, 44, 0.9, 9},
		{44, 14, 0.7, 4},
		{40, 44, -0.6, 3}, // crater
	}
	data := grid(rows, cols, 0)
	for r := range rows {
		for c := range cols {
			var v float64
			for _, b := range hills {
				dr := float64(r) - b.r
				dc := float64(c) - b.c
				v += b.h * math.Exp(-(dr*dr+dc*dc)/(2*b.w*b.w))
			}
			data[r][c] = v
		}
	}
	return data
}
