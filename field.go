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
	"math"

	"seehuhn.de/go/geom/rect"
)

// Field is a rectangular array of samples, surrounded by a ring of guard
// samples.  The guard value is one less than the smallest sample, so that
// every contour inside [Min, Max] closes within the padded array.
//
// A Field is immutable and safe for concurrent use.
type Field struct {
	rows, cols int // unpadded size
	min, max   float64

	// data holds (rows+2)*(cols+2) padded samples in row-major order.
	data []float64
}

// NewField copies data into a new padded Field.  data[r][c] is the sample
// at row r and column c; rows grow in the direction of the y axis.
//
// The function returns ErrFieldShape if data has fewer than two rows or
// columns or is ragged, ErrNonFinite if a sample is NaN or infinite, and
// ErrConstantField if all samples are equal.
func NewField(data [][]float64) (*Field, error) {
	rows := len(data)
	if rows < 2 || len(data[0]) < 2 {
		return nil, ErrFieldShape
	}
	cols := len(data[0])

	lo, hi := data[0][0], data[0][0]
	for r, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%w (row %d has %d samples, want %d)",
				ErrFieldShape, r, len(row), cols)
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w (sample %d,%d is %g)", ErrNonFinite, r, c, v)
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if lo == hi {
		return nil, ErrConstantField
	}

	guard := lo - 1
	stride := cols + 2
	padded := make([]float64, (rows+2)*stride)
	for i := range padded {
		padded[i] = guard
	}
	for r, row := range data {
		copy(padded[(r+1)*stride+1:], row)
	}

	f := &Field{
		rows: rows,
		cols: cols,
		min:  lo,
		max:  hi,
		data: padded,
	}
	return f, nil
}

// Rows returns the number of sample rows, excluding the guard ring.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of sample columns, excluding the guard ring.
func (f *Field) Cols() int { return f.cols }

// Min returns the smallest sample.
func (f *Field) Min() float64 { return f.min }

// Max returns the largest sample.
func (f *Field) Max() float64 { return f.max }

// At returns the sample at row r and column c.
func (f *Field) At(r, c int) float64 {
	if r < 0 || r >= f.rows || c < 0 || c >= f.cols {
		panic(fmt.Sprintf("contour: sample (%d,%d) outside %dx%d field", r, c, f.rows, f.cols))
	}
	return f.padded(r+1, c+1)
}

// Bounds returns the rectangle spanned by the sample positions, in field
// coordinates: x is the column index and y is the row index.
func (f *Field) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(f.cols - 1),
		URy: float64(f.rows - 1),
	}
}

// padded returns a sample of the padded array.  Row and column 0 are
// guard samples.
func (f *Field) padded(r, c int) float64 {
	return f.data[r*(f.cols+2)+c]
}

// paddedSize returns the dimensions of the padded array.
func (f *Field) paddedSize() (rows, cols int) {
	return f.rows + 2, f.cols + 2
}
