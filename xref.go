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
	"fmt"
	"io"
	"strconv"
)

// Field widths of a cross-reference table entry.
const (
	offsetWidth     = 10
	generationWidth = 5

	// xrefEntryLength is the length of one line of the cross-reference
	// table, including the two byte end-of-line marker " \n".
	xrefEntryLength = offsetWidth + 1 + generationWidth + 1 + 1 + 2

	freeHeadGeneration = 65535
)

// XRefTable records the byte offsets of the indirect objects in a PDF file
// and writes the cross-reference section.
//
// Offsets are recorded in the order the objects are written, the first
// recorded offset belongs to object number 1.  Object number 0 is the head of
// the list of free objects.  It is not recorded, but appears as the first
// entry when the table is written.
//
// The table only grows, recorded entries cannot be changed.
type XRefTable struct {
	offsets []int64
}

// Record appends the offset of the next object to the table.
func (t *XRefTable) Record(offset int64) {
	t.offsets = append(t.offsets, offset)
}

// Len returns the number of entries of the written table, including the
// entry for object 0.  This is the value of /Size in the trailer.
func (t *XRefTable) Len() int {
	return len(t.offsets) + 1
}

// Offset returns the recorded offset of the object with number n.
// The second return value indicates whether the offset was recorded.
func (t *XRefTable) Offset(n uint32) (int64, bool) {
	if n == 0 || int(n) > len(t.offsets) {
		return 0, false
	}
	return t.offsets[n-1], true
}

// WriteTo writes the cross-reference section to w.
// Writing the same table twice gives identical output.
// This implements the [Object] interface.
//
// If one of the recorded offsets does not fit into ten decimal digits, an
// error wrapping [ErrFieldOverflow] is returned and nothing is written.
func (t *XRefTable) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 16+xrefEntryLength*t.Len())
	buf = append(buf, xrefMarker...)
	buf = append(buf, "\n0 "...)
	buf = strconv.AppendInt(buf, int64(t.Len()), 10)
	buf = append(buf, '\n')

	var err error
	buf, err = appendXRefEntry(buf, 0, freeHeadGeneration, 'f')
	if err != nil {
		return 0, err
	}
	for i, offset := range t.offsets {
		buf, err = appendXRefEntry(buf, offset, 0, 'n')
		if err != nil {
			return 0, fmt.Errorf("xref entry for object %d: %w", i+1, err)
		}
	}

	return Raw(buf).WriteTo(w)
}

// appendXRefEntry appends one line of the cross-reference table to buf.
func appendXRefEntry(buf []byte, offset int64, generation int64, flag byte) ([]byte, error) {
	buf, err := appendFixedWidth(buf, offset, offsetWidth, "offset")
	if err != nil {
		return nil, err
	}
	buf = append(buf, ' ')
	buf, err = appendFixedWidth(buf, generation, generationWidth, "generation")
	if err != nil {
		return nil, err
	}
	return append(buf, ' ', flag, ' ', '\n'), nil
}

// appendFixedWidth appends the decimal representation of x, padded with
// leading zeros to the given width.  Values which are negative or which need
// more than width digits give an error wrapping [ErrFieldOverflow].
func appendFixedWidth(buf []byte, x int64, width int, field string) ([]byte, error) {
	var digits [20]byte
	s := strconv.AppendInt(digits[:0], x, 10)
	if x < 0 || len(s) > width {
		return nil, fmt.Errorf("%s %d: %w", field, x, ErrFieldOverflow)
	}
	for i := len(s); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, s...), nil
}
