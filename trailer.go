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

// Trailer holds the information written at the end of a PDF file, after the
// cross-reference table.
type Trailer struct {
	// Size is the number of entries in the cross-reference table, including
	// the entry for object 0.
	Size int

	// Root is the reference to the document catalog.
	Root Reference

	// Info optionally refers to the document information dictionary.
	Info *Reference

	// ID identifies the document.  The same value is used for both halves
	// of the /ID array, as is appropriate for a newly created file.
	ID [16]byte

	// XRefOffset is the byte offset of the cross-reference table.
	XRefOffset int64
}

// trailerIndent has the width of the "trailer" keyword.  Every line of the
// trailer dictionary starts with it.
const trailerIndent Keyword = "       "

// WriteTo writes the trailer section, up to and including the byte offset of
// the cross-reference table.  The end-of-file marker is not included.
// This implements the [Object] interface.
func (x *Trailer) WriteTo(w io.Writer) (int64, error) {
	parts := []Object{
		trailerMarker, newline,
		trailerIndent, dictOpen, Name("Size"), space, Integer(x.Size), newline,
		trailerIndent, Name("Root"), space, x.Root, newline,
	}
	if x.Info != nil {
		parts = append(parts,
			trailerIndent, Name("Info"), space, *x.Info, newline)
	}
	id := HexString(x.ID[:])
	parts = append(parts,
		trailerIndent, Name("ID"), space, Array{id, id}, newline,
		trailerIndent, dictClose, newline,
		startXRefMarker, newline,
		Keyword(strconv.FormatInt(x.XRefOffset, 10)), newline,
	)
	return WriteChain(w, parts...)
}
