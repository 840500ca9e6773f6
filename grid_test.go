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

import "testing"

// peakField is a 3×3 field with a single maximum in the centre.
func peakField(t testing.TB) *Field {
	t.Helper()
	f, err := NewField([][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestGridSize(t *testing.T) {
	f, err := NewField([][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
	})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGrid(f, 3.5)
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Errorf("grid size = %dx%d; want 3x5", g.Rows(), g.Cols())
	}
	if g.Level() != 3.5 {
		t.Errorf("Level() = %g; want 3.5", g.Level())
	}
}

func TestGridCells(t *testing.T) {
	g := NewGrid(peakField(t), 5)

	want := map[[2]int]uint8{
		{1, 1}: 11,
		{1, 2}: 7,
		{2, 2}: 14,
		{2, 1}: 13,
	}
	for r := range g.Rows() {
		for c := range g.Cols() {
			cell, ok := g.At(r, c)
			topo, expected := want[[2]int{r, c}]
			if ok != expected {
				t.Errorf("At(%d,%d) present = %t; want %t", r, c, ok, expected)
				continue
			}
			if ok && cell.Topology() != topo {
				t.Errorf("At(%d,%d) topology = %d; want %d", r, c, cell.Topology(), topo)
			}
		}
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, ok := g.At(pos[0], pos[1]); ok {
			t.Errorf("At(%d,%d) outside the grid is present", pos[0], pos[1])
		}
	}
}

func TestGridOutsideRange(t *testing.T) {
	f := peakField(t)
	for _, level := range []float64{-0.5, 10, 11} {
		g := NewGrid(f, level)
		for r := range g.Rows() {
			for c := range g.Cols() {
				if cell, ok := g.At(r, c); ok {
					t.Errorf("level %g: At(%d,%d) = %s; want trivial", level, r, c, cell)
				}
			}
		}
	}
}

// TestGridGuardRing checks that the padding encloses a field which lies
// completely above the isovalue except for its minimum.
func TestGridGuardRing(t *testing.T) {
	f, err := NewField([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGrid(f, 1)
	count := 0
	for r := range g.Rows() {
		for c := range g.Cols() {
			if _, ok := g.At(r, c); ok {
				count++
			}
		}
	}
	// all cells touching the three samples above 1
	if count != 8 {
		t.Errorf("%d non-trivial cells; want 8", count)
	}
}
