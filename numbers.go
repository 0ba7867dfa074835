// seehuhn.de/go/pdfgen - a low-level encoder for PDF files
// Copyright (C) 2026  The pdfgen Authors
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

package pdfgen

import (
	"io"
	"strconv"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/pdfgen/internal/float"
)

// Number is the set of Go types which can be written as PDF numbers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numbers is an array of numbers, for example a transformation matrix or the
// coordinates of a rectangle.
type Numbers[T Number] []T

// WriteTo implements the [Object] interface.
func (x Numbers[T]) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 2+8*len(x))
	buf = append(buf, '[')
	for i, v := range x {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendNumber(buf, v)
	}
	buf = append(buf, ']')
	return Raw(buf).WriteTo(w)
}

func appendNumber[T Number](buf []byte, v T) []byte {
	var one T = 1
	var zero T
	switch {
	case one/2 != 0: // floating point type
		return append(buf, float.Format(float64(v), -1)...)
	case zero-one > 0: // unsigned integer type
		return strconv.AppendUint(buf, uint64(v), 10)
	default:
		return strconv.AppendInt(buf, int64(v), 10)
	}
}
