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

// Package pdfgen writes PDF files at the level of the file structure.
//
// The package produces the byte-exact layout of a PDF file: the header line,
// a sequence of numbered indirect objects, the cross-reference table which
// records the byte offset of every object, the trailer and the end-of-file
// marker.  All offsets are derived from the number of bytes actually written,
// so that the cross-reference table always matches the output.
//
// Everything which can be written to a file implements the [Object]
// interface.  The native PDF types are:
//
//	Array
//	Bool
//	Dict
//	HexString
//	Integer
//	Name
//	Null
//	Real
//	Reference
//	*Stream
//	String
//
// On top of these, [Page], [PageTree], [Catalog], [Info] and [Trailer]
// represent the objects which make up the document structure.
//
// A [Writer] writes the file section by section and enforces the order of
// the sections:
//
//	pdf, err := pdfgen.NewWriter(w, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = pdf.WriteHeader()
//	...
//	err = pdf.WriteObject(obj, pdf.Alloc())
//	...
//	err = pdf.WriteXRef()
//	...
//	err = pdf.WriteTrailer(catalogRef, id)
//	...
//	err = pdf.WriteEOF()
//
// For the common case of a document consisting of blank pages, [Document]
// assembles the complete file in one call.
package pdfgen
