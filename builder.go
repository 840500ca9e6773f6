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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Builder receives traced contours.  Each sub-path consists of one MoveTo,
// followed by LineTo calls and a final Close.
type Builder interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	Close()
}

// PathBuilder collects contours into a path.Data.
type PathBuilder struct {
	// Transform maps field coordinates to the coordinates stored in the
	// path.  The zero value means no transformation.
	Transform matrix.Matrix

	data *path.Data
}

// NewPathBuilder returns a PathBuilder which applies the transformation m
// to all points.  Pass the zero matrix to store field coordinates.
func NewPathBuilder(m matrix.Matrix) *PathBuilder {
	return &PathBuilder{
		Transform: m,
		data:      &path.Data{},
	}
}

// MoveTo implements the [Builder] interface.
func (b *PathBuilder) MoveTo(p vec.Vec2) {
	b.data = b.data.MoveTo(b.apply(p))
}

// LineTo implements the [Builder] interface.
func (b *PathBuilder) LineTo(p vec.Vec2) {
	b.data = b.data.LineTo(b.apply(p))
}

// Close implements the [Builder] interface.
func (b *PathBuilder) Close() {
	b.data = b.data.Close()
}

// Data returns the collected path.  The path is empty if no contour was
// traced.
func (b *PathBuilder) Data() *path.Data {
	return b.data
}

func (b *PathBuilder) apply(p vec.Vec2) vec.Vec2 {
	m := b.Transform
	if m == (matrix.Matrix{}) {
		return p
	}
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Polyline is one closed sub-path.  The last point repeats the first one.
type Polyline []vec.Vec2

// Closed reports whether the first and last point coincide.
func (l Polyline) Closed() bool {
	if len(l) < 2 {
		return false
	}
	a, b := l[0], l[len(l)-1]
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

// SignedArea returns the area enclosed by the polyline.  The area is
// positive for counter-clockwise orientation in a frame where y points up,
// i.e. for the outline of a region above the isovalue, and negative for
// holes.
func (l Polyline) SignedArea() float64 {
	var a float64
	for i := range l {
		p, q := l[i], l[(i+1)%len(l)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Bounds returns the bounding box of the polyline.
func (l Polyline) Bounds() rect.Rect {
	if len(l) == 0 {
		return rect.Rect{}
	}
	bbox := rect.Rect{LLx: l[0].X, LLy: l[0].Y, URx: l[0].X, URy: l[0].Y}
	for _, p := range l[1:] {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox
}

// Polylines collects contours as lists of points.
type Polylines struct {
	Lines []Polyline
}

// MoveTo implements the [Builder] interface.
func (p *Polylines) MoveTo(pt vec.Vec2) {
	p.Lines = append(p.Lines, Polyline{pt})
}

// LineTo implements the [Builder] interface.
func (p *Polylines) LineTo(pt vec.Vec2) {
	last := len(p.Lines) - 1
	p.Lines[last] = append(p.Lines[last], pt)
}

// Close implements the [Builder] interface.  Sub-paths produced by the
// tracer already end at their starting point, so nothing needs to be added.
func (p *Polylines) Close() {}
