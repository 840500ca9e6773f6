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

import "fmt"

// Grid holds the classified cells of a field for one isovalue.  Every 2×2
// block of samples of the padded field forms a cell, so the grid is one
// cell smaller than the padded field in each direction.
//
// Cells are stored densely in row-major order.  Positions where the
// contour does not pass hold a trivial cell.
//
// Tracing consumes the grid.  A Grid must not be used concurrently.
type Grid struct {
	level      float64
	rows, cols int
	cells      []Cell
}

// NewGrid classifies all cells of f for the given isovalue.
//
// If level is below the smallest sample, all cells are trivial.  Without
// this, the guard ring would produce a contour around the whole field.
func NewGrid(f *Field, level float64) *Grid {
	pr, pc := f.paddedSize()
	g := &Grid{
		level: level,
		rows:  pr - 1,
		cols:  pc - 1,
		cells: make([]Cell, (pr-1)*(pc-1)),
	}
	if level < f.min {
		return g
	}

	count := 0
	for r := range g.rows {
		for c := range g.cols {
			cell := Classify(
				f.padded(r+1, c),
				f.padded(r+1, c+1),
				f.padded(r, c+1),
				f.padded(r, c),
				level)
			if cell.IsTrivial() {
				continue
			}
			g.cells[r*g.cols+c] = cell
			count++
		}
	}
	Logger().Debug("grid built", "level", level, "rows", g.rows, "cols", g.cols, "cells", count)
	return g
}

// Level returns the isovalue the grid was built for.
func (g *Grid) Level() float64 { return g.level }

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell at row r and column c of the grid.  The boolean is
// false if the position is outside the grid or the cell is trivial.
//
// Cell (r, c) spans columns c-1 to c and rows r-1 to r of the field.
func (g *Grid) At(r, c int) (Cell, bool) {
	if !g.inside(r, c) {
		return Cell{}, false
	}
	cell := g.cells[r*g.cols+c]
	if cell.IsTrivial() {
		return Cell{}, false
	}
	return cell, true
}

func (g *Grid) inside(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// cell returns a pointer into the arena.  The position must be inside.
func (g *Grid) cell(r, c int) *Cell {
	return &g.cells[r*g.cols+c]
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid{rows=%d, cols=%d, level=%g}", g.rows, g.cols, g.level)
}
