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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Side identifies one edge of a cell.
type Side uint8

// These are the sides of a cell.  SideNone marks the absence of a
// previous side at the start of a sub-path.
const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// opposite returns the side of the neighbouring cell which shares the edge s.
func (s Side) opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	default:
		return SideNone
	}
}

// Topology values with special meaning.
const (
	topoAbove   = 0  // all corners above the isovalue
	topoSaddleA = 5  // top-right and bottom-left below
	topoSaddleB = 10 // top-left and bottom-right below
	topoCleared = 15 // all corners below, or consumed by the tracer
)

// Edge bits for cellEdges.
const (
	edgeLeft uint8 = 1 << iota
	edgeTop
	edgeRight
	edgeBottom
)

// cellEdges lists the edges crossed by the contour for every topology.
var cellEdges = [16]uint8{
	1:  edgeLeft | edgeBottom,
	2:  edgeBottom | edgeRight,
	3:  edgeLeft | edgeRight,
	4:  edgeTop | edgeRight,
	5:  edgeLeft | edgeTop | edgeRight | edgeBottom,
	6:  edgeBottom | edgeTop,
	7:  edgeLeft | edgeTop,
	8:  edgeLeft | edgeTop,
	9:  edgeBottom | edgeTop,
	10: edgeLeft | edgeTop | edgeRight | edgeBottom,
	11: edgeTop | edgeRight,
	12: edgeLeft | edgeRight,
	13: edgeBottom | edgeRight,
	14: edgeLeft | edgeBottom,
}

// Cell describes how the contour for one isovalue passes through a 2×2
// neighbourhood of samples.
//
// The crossing fractions give the position of the contour along each edge,
// measured from the bottom-left corner towards the top or right.  Edges not
// crossed by the contour hold 0.5 and are never read.
type Cell struct {
	topology uint8
	flipped  bool

	// passed has bit 1<<s set once the saddle passage entered through
	// side s has been traced.
	passed uint8

	left, top, right, bottom float64
}

// Classify computes the cell for the corner samples tl, tr, br, bl (top-left,
// top-right, bottom-right, bottom-left) and the given isovalue.
//
// The topology has one bit per corner, walking clockwise from the top-left
// corner (bit 3) to the bottom-left corner (bit 0).  A bit is set if the
// corner is less than or equal to the isovalue.  For the two saddle
// topologies 5 and 10, the cell is flipped if the average of the corners
// is below the isovalue.
//
// Classify is a pure function of its arguments.
func Classify(tl, tr, br, bl, level float64) Cell {
	var idx uint8
	if !(tl > level) {
		idx |= 8
	}
	if !(tr > level) {
		idx |= 4
	}
	if !(br > level) {
		idx |= 2
	}
	if !(bl > level) {
		idx |= 1
	}

	flipped := false
	if idx == topoSaddleA || idx == topoSaddleB {
		center := (tl + tr + br + bl) / 4
		flipped = center < level
	}

	left, top, right, bottom := 0.5, 0.5, 0.5, 0.5
	edges := cellEdges[idx]
	if edges&edgeLeft != 0 {
		left = (level - bl) / (tl - bl)
	}
	if edges&edgeTop != 0 {
		top = (level - tl) / (tr - tl)
	}
	if edges&edgeRight != 0 {
		right = (level - br) / (tr - br)
	}
	if edges&edgeBottom != 0 {
		bottom = (level - bl) / (br - bl)
	}

	return newCell(idx, flipped, left, top, right, bottom)
}

// newCell assembles a cell.  Only saddle cells can be flipped; the flag is
// dropped for all other topologies.
func newCell(idx uint8, flipped bool, left, top, right, bottom float64) Cell {
	if flipped && idx != topoSaddleA && idx != topoSaddleB {
		Logger().Warn("only saddle cells can be flipped, clearing flag",
			"topology", idx)
		flipped = false
	}
	return Cell{
		topology: idx,
		flipped:  flipped,
		left:     left,
		top:      top,
		right:    right,
		bottom:   bottom,
	}
}

// Topology returns the 4-bit classification of the cell.  After tracing,
// consumed cells report 15.
func (c Cell) Topology() uint8 { return c.topology }

// Flipped reports whether a saddle cell connects the crossings around the
// corners which lie above the isovalue.  It is always false for cells
// which are not saddles.
func (c Cell) Flipped() bool { return c.flipped }

// IsSaddle reports whether the cell is one of the two ambiguous cases.
func (c Cell) IsSaddle() bool {
	return c.topology == topoSaddleA || c.topology == topoSaddleB
}

// IsTrivial reports whether the contour does not pass through the cell.
func (c Cell) IsTrivial() bool {
	return c.topology == topoAbove || c.topology == topoCleared
}

// Crossing returns the point where the contour crosses the given side, in
// the unit square of the cell with the origin at the bottom-left corner.
func (c Cell) Crossing(s Side) vec.Vec2 {
	switch s {
	case SideLeft:
		return vec.Vec2{X: 0, Y: c.left}
	case SideTop:
		return vec.Vec2{X: c.top, Y: 1}
	case SideRight:
		return vec.Vec2{X: 1, Y: c.right}
	case SideBottom:
		return vec.Vec2{X: c.bottom, Y: 0}
	default:
		panic("contour: no crossing for side " + s.String())
	}
}

// clear marks a consumed cell so that the tracer does not use it again.
// Saddle cells are left alone, since the contour passes through them twice.
func (c *Cell) clear() {
	switch c.topology {
	case topoAbove, topoSaddleA, topoSaddleB, topoCleared:
		return
	}
	c.topology = topoCleared
}

// saddleEntries lists the two sides through which the contour can enter a
// saddle cell.
func (c *Cell) saddleEntries() [2]Side {
	if c.topology == topoSaddleA {
		return [2]Side{SideLeft, SideRight}
	}
	return [2]Side{SideBottom, SideTop}
}

// traced reports whether the saddle passage entered through s is done.
func (c *Cell) traced(s Side) bool {
	return c.passed&(1<<s) != 0
}

// enter records that the saddle passage entered through s has been traced.
// It returns false if the passage had been traced before.
func (c *Cell) enter(s Side) bool {
	if c.traced(s) {
		return false
	}
	c.passed |= 1 << s
	return true
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell{index=%d, flipped=%t, left=%g, top=%g, right=%g, bottom=%g}",
		c.topology, c.flipped, c.left, c.top, c.right, c.bottom)
}
