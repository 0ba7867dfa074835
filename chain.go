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

import "io"

// WriterFunc is an adapter which allows an ordinary function to be used as
// an [Object].
type WriterFunc func(w io.Writer) (int64, error)

// WriteTo implements the [Object] interface.
func (f WriterFunc) WriteTo(w io.Writer) (int64, error) {
	return f(w)
}

// Raw is a sequence of bytes which is copied to the output verbatim.
type Raw []byte

// WriteTo implements the [Object] interface.
// A short write without error is reported as [io.ErrShortWrite].
func (x Raw) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(x)
	if err == nil && n != len(x) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// WriteChain writes the given parts to w, in order.
//
// The return value is the total number of bytes written.  Writing stops at the
// first part which returns an error, and this error is returned together with
// the number of bytes written up to and including the failing part.  Bytes
// which have already reached w are not taken back.
func WriteChain(w io.Writer, parts ...Object) (int64, error) {
	var total int64
	for _, part := range parts {
		n, err := part.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Keyword is a fixed piece of PDF syntax, for example a delimiter or one of
// the file structure markers.
type Keyword string

// WriteTo implements the [Object] interface.
func (x Keyword) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(x))
	if err == nil && n != len(x) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Markers and delimiters of the PDF file structure.
const (
	newline Keyword = "\n"
	space   Keyword = " "

	eofMarker       Keyword = "%%EOF"
	objMarker       Keyword = "obj"
	endObjMarker    Keyword = "endobj"
	xrefMarker      Keyword = "xref"
	trailerMarker   Keyword = "trailer"
	startXRefMarker Keyword = "startxref"

	dictOpen   Keyword = "<< "
	dictClose  Keyword = " >>"
	arrayOpen  Keyword = "["
	arrayClose Keyword = "]"
)
