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
	"time"
)

// PDF 2.0 sections: 14.3

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  Empty fields are omitted
// from the output.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the document,
	// if the document was converted to PDF from another format.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time

	// ModDate gives the date and time the document was most recently modified.
	ModDate time.Time
}

// WriteTo implements the [Object] interface.
func (x *Info) WriteTo(w io.Writer) (int64, error) {
	var entries []dictEntry
	text := func(key Name, val string) {
		if val != "" {
			entries = append(entries, dictEntry{key, TextString(val)})
		}
	}
	date := func(key Name, val time.Time) {
		if !val.IsZero() {
			entries = append(entries, dictEntry{key, Date(val)})
		}
	}
	text("Title", x.Title)
	text("Author", x.Author)
	text("Subject", x.Subject)
	text("Keywords", x.Keywords)
	text("Creator", x.Creator)
	text("Producer", x.Producer)
	date("CreationDate", x.CreationDate)
	date("ModDate", x.ModDate)
	return writeDict(w, entries...)
}
