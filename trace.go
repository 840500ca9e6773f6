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

import (
	"context"
	"math"

	"seehuhn.de/go/geom/vec"
)

// epsilon is the distance below which two consecutive points are
// considered equal on one axis.
const epsilon = 1e-7

// Trace walks the grid and sends the contour to b, one closed sub-path at
// a time: a MoveTo, a sequence of LineTo calls, and a Close.  Points are
// given in field coordinates, with x the column and y the row.  Regions
// above the isovalue are traced counter-clockwise, so holes come out
// clockwise.
//
// Trace consumes the grid: every visited cell is marked as used, and
// tracing the same grid a second time produces nothing.
//
// The only possible error is a *CorruptGridError.
func Trace(g *Grid, b Builder) error {
	return traceGrid(context.Background(), g, b)
}

// traceGrid scans the grid in row-major order and traces one sub-path from
// each start cell it finds.  Saddle cells are never used as start cells;
// a second sweep then picks up rings which consist of saddle cells only.
// The context is checked once per row.
func traceGrid(ctx context.Context, g *Grid, b Builder) error {
	for r := range g.rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		for c := range g.cols {
			cell := g.cell(r, c)
			if cell.IsTrivial() || cell.IsSaddle() {
				continue
			}
			if err := g.traceLoop(r, c, SideNone, b); err != nil {
				return err
			}
		}
	}

	for r := range g.rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		for c := range g.cols {
			cell := g.cell(r, c)
			if !cell.IsSaddle() {
				continue
			}
			for _, entry := range cell.saddleEntries() {
				if cell.traced(entry) {
					continue
				}
				if err := g.traceLoop(r, c, entry, b); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// traceLoop follows one closed sub-path, starting and ending in the cell
// at (r0, c0).  For a saddle start cell, entry selects the passage to
// follow; otherwise entry must be SideNone.
func (g *Grid) traceLoop(r0, c0 int, entry Side, b Builder) error {
	start := g.cell(r0, c0)
	startSaddle := start.IsSaddle()
	first := firstSide(start, entry.opposite())
	second := secondSide(start, entry.opposite())
	if first == SideNone || second == SideNone {
		return g.corrupt(r0, c0, entry, "start cell has no crossing")
	}
	if startSaddle && !start.enter(first) {
		return g.corrupt(r0, c0, first, "saddle passage traced twice")
	}

	p := g.point(r0, c0, start, first)
	b.MoveTo(p)
	prev := p
	n := 1
	emit := func(q vec.Vec2) {
		if math.Abs(q.X-prev.X) <= epsilon && math.Abs(q.Y-prev.Y) <= epsilon {
			return
		}
		b.LineTo(q)
		prev = q
		n++
	}

	emit(g.point(r0, c0, start, second))
	exit := second
	r, c := step(r0, c0, exit)
	start.clear()

	// Every non-saddle cell is left once and every saddle at most twice,
	// so a longer walk means the grid is inconsistent.
	budget := 2 * len(g.cells)
	for r != r0 || c != c0 || startSaddle && exit.opposite() != first {
		if budget--; budget < 0 {
			return g.corrupt(r, c, exit.opposite(), "sub-path does not close")
		}
		if !g.inside(r, c) {
			return g.corrupt(r, c, exit.opposite(), "walked off the grid")
		}
		cell := g.cell(r, c)
		if cell.IsTrivial() {
			return g.corrupt(r, c, exit.opposite(), "reached a cell without crossing")
		}
		next := secondSide(cell, exit)
		if next == SideNone {
			return g.corrupt(r, c, exit.opposite(), "saddle entered from an unexpected side")
		}
		if cell.IsSaddle() && !cell.enter(exit.opposite()) {
			return g.corrupt(r, c, exit.opposite(), "saddle passage traced twice")
		}
		emit(g.point(r, c, cell, next))
		exit = next
		cell.clear()
		r, c = step(r, c, exit)
	}
	if exit.opposite() != first {
		return g.corrupt(r, c, exit.opposite(), "start cell re-entered from the wrong side")
	}

	b.Close()
	Logger().Debug("sub-path closed", "level", g.level, "row", r0, "col", c0, "points", n)
	return nil
}

// point converts a crossing of the cell at (r, c) into field coordinates.
// The grid is built over the padded field, which adds one row and column.
func (g *Grid) point(r, c int, cell *Cell, s Side) vec.Vec2 {
	q := cell.Crossing(s)
	return vec.Vec2{
		X: float64(c) + q.X - 1,
		Y: float64(r) + q.Y - 1,
	}
}

func (g *Grid) corrupt(r, c int, s Side, reason string) error {
	var topo uint8
	if g.inside(r, c) {
		topo = g.cell(r, c).topology
	}
	return &CorruptGridError{
		Level:    g.level,
		Row:      r,
		Col:      c,
		Topology: topo,
		Side:     s,
		Reason:   reason,
	}
}

// step returns the position of the neighbour across side s.
func step(r, c int, s Side) (int, int) {
	switch s {
	case SideBottom:
		r--
	case SideTop:
		r++
	case SideLeft:
		c--
	case SideRight:
		c++
	}
	return r, c
}

// firstSide returns the side where the contour enters the cell, walking
// with the region above the isovalue on the left.  For saddles the entry
// side is determined by prev, the side through which the previous cell was
// left.  SideNone is returned if there is no valid entry side.
func firstSide(cell *Cell, prev Side) Side {
	switch cell.topology {
	case 1, 3, 7:
		return SideLeft
	case 2, 6, 14:
		return SideBottom
	case 4, 12, 13:
		return SideRight
	case 8, 9, 11:
		return SideTop
	case topoSaddleA:
		switch prev {
		case SideLeft, SideRight:
			return prev.opposite()
		}
	case topoSaddleB:
		switch prev {
		case SideTop, SideBottom:
			return prev.opposite()
		}
	}
	return SideNone
}

// secondSide returns the side where the contour leaves the cell, which is
// also the direction of the next cell.  For saddles, the exit depends on
// the entry side and on the flipped flag.
func secondSide(cell *Cell, prev Side) Side {
	switch cell.topology {
	case 8, 12, 14:
		return SideLeft
	case 1, 9, 13:
		return SideBottom
	case 2, 3, 11:
		return SideRight
	case 4, 6, 7:
		return SideTop
	case topoSaddleA:
		switch prev {
		case SideLeft:
			if cell.flipped {
				return SideBottom
			}
			return SideTop
		case SideRight:
			if cell.flipped {
				return SideTop
			}
			return SideBottom
		}
	case topoSaddleB:
		switch prev {
		case SideBottom:
			if cell.flipped {
				return SideRight
			}
			return SideLeft
		case SideTop:
			if cell.flipped {
				return SideLeft
			}
			return SideRight
		}
	}
	return SideNone
}
