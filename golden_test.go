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
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/contour/testcases"
)

// TestGolden compares the contours of the small test cases with the
// reference output in testdata/golden.  Run "go test -update" to
// regenerate the reference files after an intended change.
func TestGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for category, cases := range testcases.All {
		if category == "large" {
			continue
		}
		for _, tc := range cases {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				f, err := NewField(tc.Data)
				if err != nil {
					t.Fatal(err)
				}
				e := NewEngine(f, &Options{Transform: tc.CTM})
				defer e.Close()

				paths, err := e.Contours(context.Background(), tc.Levels)
				if err != nil {
					t.Fatal(err)
				}

				buf := &bytes.Buffer{}
				for i, p := range paths {
					fmt.Fprintf(buf, "level %.4f\n", tc.Levels[i])
					writePath(buf, p)
				}
				g.Assert(t, name, buf.Bytes())
			})
		}
	}
}

// writePath writes one line per path command, with coordinates rounded to
// four decimal places.
func writePath(buf *bytes.Buffer, p *path.Data) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			fmt.Fprintf(buf, "M %.4f %.4f\n", pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			fmt.Fprintf(buf, "L %.4f %.4f\n", pts[0].X, pts[0].Y)
		case path.CmdClose:
			buf.WriteString("Z\n")
		}
	}
}
