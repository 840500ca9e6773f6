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
	"errors"
	"math"
	"testing"
)

func TestNewFieldErrors(t *testing.T) {
	cases := []struct {
		name string
		data [][]float64
		err  error
	}{
		{"Nil", nil, ErrFieldShape},
		{"SingleSample", [][]float64{{1}}, ErrFieldShape},
		{"SingleRow", [][]float64{{1, 2, 3}}, ErrFieldShape},
		{"SingleColumn", [][]float64{{1}, {2}}, ErrFieldShape},
		{"Ragged", [][]float64{{1, 2}, {3}}, ErrFieldShape},
		{"NaN", [][]float64{{1, 2}, {math.NaN(), 4}}, ErrNonFinite},
		{"Inf", [][]float64{{1, math.Inf(-1)}, {3, 4}}, ErrNonFinite},
		{"Constant", [][]float64{{7, 7}, {7, 7}}, ErrConstantField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewField(tc.data)
			if !errors.Is(err, tc.err) {
				t.Fatalf("NewField(%v) error = %v; want %v", tc.data, err, tc.err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error %v does not wrap ErrInvalidInput", err)
			}
			if errors.Is(err, ErrCorruptGrid) {
				t.Errorf("input error %v wraps ErrCorruptGrid", err)
			}
			if f != nil {
				t.Errorf("NewField returned a field together with an error")
			}
		})
	}
}

func TestNewField(t *testing.T) {
	data := [][]float64{
		{1, 2, 3},
		{4, -5, 6},
	}
	f, err := NewField(data)
	if err != nil {
		t.Fatal(err)
	}

	// the field must not alias the input
	data[0][0] = 100

	if f.Rows() != 2 || f.Cols() != 3 {
		t.Errorf("size = %dx%d; want 2x3", f.Rows(), f.Cols())
	}
	if f.Min() != -5 || f.Max() != 6 {
		t.Errorf("range = [%g, %g]; want [-5, 6]", f.Min(), f.Max())
	}
	if got := f.At(0, 0); got != 1 {
		t.Errorf("At(0,0) = %g; want 1", got)
	}
	if got := f.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %g; want 6", got)
	}

	pr, pc := f.paddedSize()
	if pr != 4 || pc != 5 {
		t.Fatalf("padded size = %dx%d; want 4x5", pr, pc)
	}
	for r := range pr {
		for c := range pc {
			if r > 0 && r < pr-1 && c > 0 && c < pc-1 {
				continue
			}
			if got := f.padded(r, c); got != -6 {
				t.Errorf("guard (%d,%d) = %g; want -6", r, c, got)
			}
		}
	}

	b := f.Bounds()
	if b.LLx != 0 || b.LLy != 0 || b.URx != 2 || b.URy != 1 {
		t.Errorf("Bounds() = %v; want [0,2]x[0,1]", b)
	}
}

func TestFieldAtOutside(t *testing.T) {
	f, err := NewField([][]float64{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("At(2,0) did not panic")
		}
	}()
	f.At(2, 0)
}
