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
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/testcases"
)

// TestCases traces all test cases and checks the structural properties of
// the result.
func TestCases(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				f, err := NewField(tc.Data)
				if err != nil {
					t.Fatal(err)
				}
				for i, level := range tc.Levels {
					var out Polylines
					if err := Trace(NewGrid(f, level), &out); err != nil {
						t.Fatalf("level %g: %v", level, err)
					}
					if tc.SubPaths != nil && len(out.Lines) != tc.SubPaths[i] {
						t.Errorf("level %g: got %d sub-paths; want %d",
							level, len(out.Lines), tc.SubPaths[i])
					}
					checkContour(t, f, level, out.Lines)
				}
			})
		}
	}
}

// TestRandomFields checks the contours of noisy fields, which contain many
// saddle cells.
func TestRandomFields(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for k := range 10 {
		rows := 2 + rng.IntN(20)
		cols := 2 + rng.IntN(20)
		data := make([][]float64, rows)
		for r := range data {
			data[r] = make([]float64, cols)
			for c := range data[r] {
				data[r][c] = math.Round(rng.Float64()*100) / 10
			}
		}
		f, err := NewField(data)
		if err != nil {
			continue
		}
		t.Run(fmt.Sprintf("%d_%dx%d", k, rows, cols), func(t *testing.T) {
			for range 5 {
				level := f.Min() + rng.Float64()*(f.Max()-f.Min())
				if level == f.Max() {
					continue
				}
				var out Polylines
				if err := Trace(NewGrid(f, level), &out); err != nil {
					t.Fatalf("level %g: %v", level, err)
				}
				if len(out.Lines) == 0 {
					t.Errorf("level %g: no contour inside the range [%g, %g]",
						level, f.Min(), f.Max())
				}
				checkContour(t, f, level, out.Lines)
			}
		})
	}
}

// checkContour verifies that all sub-paths are closed and free of
// crossings, and that the enclosed region matches the samples above the
// isovalue.
func checkContour(t *testing.T, f *Field, level float64, lines []Polyline) {
	t.Helper()

	var area float64
	for j, l := range lines {
		if len(l) < 4 {
			t.Errorf("level %g: sub-path %d has only %d points", level, j, len(l))
		}
		if !l.Closed() {
			t.Errorf("level %g: sub-path %d is not closed", level, j)
		}
		area += l.SignedArea()
	}
	if area < 0 {
		t.Errorf("level %g: total signed area %g is negative", level, area)
	}

	if i, j, ok := findCrossing(lines); ok {
		t.Errorf("level %g: segments %v and %v cross", level, i, j)
	}

	checkCoverage(t, f, level, lines)
}

type segment struct {
	line, index int
	a, b        vec.Vec2
}

// findCrossing looks for two segments which intersect in their interiors.
func findCrossing(lines []Polyline) (segment, segment, bool) {
	var segs []segment
	for i, l := range lines {
		for j := 1; j < len(l); j++ {
			segs = append(segs, segment{i, j, l[j-1], l[j]})
		}
	}
	orient := func(p, q, r vec.Vec2) float64 {
		d, e := q.Sub(p), r.Sub(p)
		return d.X*e.Y - d.Y*e.X
	}
	for i := range segs {
		s := segs[i]
		for j := i + 1; j < len(segs); j++ {
			u := segs[j]
			if max(s.a.X, s.b.X) < min(u.a.X, u.b.X) || max(u.a.X, u.b.X) < min(s.a.X, s.b.X) ||
				max(s.a.Y, s.b.Y) < min(u.a.Y, u.b.Y) || max(u.a.Y, u.b.Y) < min(s.a.Y, s.b.Y) {
				continue
			}
			o1 := orient(s.a, s.b, u.a)
			o2 := orient(s.a, s.b, u.b)
			o3 := orient(u.a, u.b, s.a)
			o4 := orient(u.a, u.b, s.b)
			if o1*o2 < 0 && o3*o4 < 0 {
				return s, u, true
			}
		}
	}
	return segment{}, segment{}, false
}

const (
	coverageScale  = 16 // pixels per sample spacing
	coverageMargin = 2 * coverageScale
)

// checkCoverage fills the contour with the non-zero winding rule and
// compares the result to the samples.  Samples very close to the contour
// are skipped.  Isovalues below the field minimum have no contour, so
// there is nothing to compare.
func checkCoverage(t *testing.T, f *Field, level float64, lines []Polyline) {
	t.Helper()
	if level < f.Min() {
		return
	}

	w := (f.Cols()-1)*coverageScale + 2*coverageMargin
	h := (f.Rows()-1)*coverageScale + 2*coverageMargin
	z := vector.NewRasterizer(w, h)
	tr := func(p vec.Vec2) (float32, float32) {
		return float32(p.X*coverageScale + coverageMargin),
			float32(p.Y*coverageScale + coverageMargin)
	}
	for _, l := range lines {
		z.MoveTo(tr(l[0]))
		for _, p := range l[1:] {
			z.LineTo(tr(p))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	value := func(r, c int) float64 {
		if r < 0 || r >= f.Rows() || c < 0 || c >= f.Cols() {
			return f.Min() - 1
		}
		return f.At(r, c)
	}
	for r := range f.Rows() {
		for c := range f.Cols() {
			v := value(r, c)
			if nearContour(v, level, value(r-1, c), value(r+1, c), value(r, c-1), value(r, c+1)) {
				continue
			}
			x := c*coverageScale + coverageMargin
			y := r*coverageScale + coverageMargin
			covered := mask.AlphaAt(x, y).A >= 0x80
			if covered != (v > level) {
				t.Errorf("level %g: sample (%d,%d) = %g has coverage %d",
					level, r, c, v, mask.AlphaAt(x, y).A)
			}
		}
	}
}

// nearContour reports whether the contour passes within a quarter of the
// sample spacing of a sample with value v.
func nearContour(v, level float64, neighbours ...float64) bool {
	if v == level {
		return true
	}
	for _, w := range neighbours {
		if (v > level) == (w > level) {
			continue
		}
		if (level-v)/(w-v) < 0.25 {
			return true
		}
	}
	return false
}
