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
)

// Reference identifies an indirect object in a PDF file.
// Two references are equal if both the object number and the generation
// number coincide.
type Reference struct {
	Number     uint32
	Generation uint16
}

// NewReference returns the reference to object number n, generation 0.
func NewReference(n uint32) Reference {
	return Reference{Number: n}
}

func (x Reference) String() string {
	s := "obj_" + strconv.FormatUint(uint64(x.Number), 10)
	if x.Generation > 0 {
		s += "@" + strconv.FormatUint(uint64(x.Generation), 10)
	}
	return s
}

// WriteTo writes the reference form "N G R" of x.
// This implements the [Object] interface.
func (x Reference) WriteTo(w io.Writer) (int64, error) {
	return Raw(x.appendNumbers(nil, 'R')).WriteTo(w)
}

// Def returns the definition form "N G obj" of x, which starts the body of
// an indirect object.
func (x Reference) Def() Object {
	return WriterFunc(func(w io.Writer) (int64, error) {
		buf := x.appendNumbers(nil, 0)
		buf = append(buf, objMarker...)
		return Raw(buf).WriteTo(w)
	})
}

func (x Reference) appendNumbers(buf []byte, suffix byte) []byte {
	buf = strconv.AppendUint(buf, uint64(x.Number), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(x.Generation), 10)
	buf = append(buf, ' ')
	if suffix != 0 {
		buf = append(buf, suffix)
	}
	return buf
}
