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

	"golang.org/x/text/language"
)

// PDF 2.0 sections: 7.7.2

// Catalog represents the document catalog, the root of the object hierarchy
// of a PDF file.
type Catalog struct {
	// Pages is the root of the document's page tree.
	Pages Reference

	// PageLayout (optional) specifies the page layout to use when the document
	// is opened. Valid values are SinglePage, OneColumn, TwoColumnLeft,
	// TwoColumnRight, TwoPageLeft, TwoPageRight.
	PageLayout Name

	// Metadata (optional, PDF 1.4) refers to the XMP metadata stream of the
	// document.
	Metadata *Reference

	// Lang (optional, PDF 1.4) is the natural language of the text in the
	// document.
	Lang language.Tag
}

// WriteTo implements the [Object] interface.
func (x *Catalog) WriteTo(w io.Writer) (int64, error) {
	entries := []dictEntry{
		{"Type", Name("Catalog")},
		{"Pages", x.Pages},
	}
	if x.PageLayout != "" {
		entries = append(entries, dictEntry{"PageLayout", x.PageLayout})
	}
	if x.Metadata != nil {
		entries = append(entries, dictEntry{"Metadata", *x.Metadata})
	}
	if x.Lang != language.Und {
		entries = append(entries, dictEntry{"Lang", TextString(x.Lang.String())})
	}
	return writeDict(w, entries...)
}
