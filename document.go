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

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/language"
)

// Document collects the pages and the document-level information of a PDF
// file, and writes the complete file in one go.
type Document struct {
	// Pages are the media boxes of the pages of the document, in order.
	Pages []Rectangle

	// Info, if not nil, is written as the document information dictionary.
	Info *Info

	// Metadata, if not nil, is written as the XMP metadata stream of the
	// document.
	Metadata Object

	// Lang is the natural language of the document.
	Lang language.Tag

	// ID identifies the file.  If ID is nil, a hash of the header and of
	// all objects is used.
	ID *[16]byte

	// Options are passed to the [Writer].
	Options *WriterOptions
}

// Write writes the document to w.
//
// A document without pages is written as the header line followed by the
// end-of-file marker, without any objects, cross-reference table or trailer.
// Otherwise, the output is a complete PDF file with the document catalog as
// object 1 and the root of the page tree as object 2.
func (doc *Document) Write(w io.Writer) error {
	h, err := blake2b.New(16, nil)
	if err != nil {
		return err
	}
	pdf, err := NewWriter(io.MultiWriter(w, h), doc.Options)
	if err != nil {
		return err
	}

	err = pdf.WriteHeader()
	if err != nil {
		return err
	}
	if len(doc.Pages) == 0 {
		return pdf.WriteEOF()
	}

	catalogRef := pdf.Alloc()
	treeRef := pdf.Alloc()
	pageRefs := make([]Reference, len(doc.Pages))
	for i := range doc.Pages {
		pageRefs[i] = pdf.Alloc()
	}
	var infoRef, metaRef *Reference
	if doc.Info != nil {
		ref := pdf.Alloc()
		infoRef = &ref
	}
	if doc.Metadata != nil {
		ref := pdf.Alloc()
		metaRef = &ref
	}

	catalog := &Catalog{
		Pages:    treeRef,
		Metadata: metaRef,
		Lang:     doc.Lang,
	}
	err = pdf.WriteObject(catalog, catalogRef)
	if err != nil {
		return err
	}
	err = pdf.WriteObject(&PageTree{Kids: pageRefs}, treeRef)
	if err != nil {
		return err
	}
	for i, box := range doc.Pages {
		err = pdf.WriteObject(NewPage(treeRef, box), pageRefs[i])
		if err != nil {
			return err
		}
	}
	if infoRef != nil {
		err = pdf.WriteObject(doc.Info, *infoRef)
		if err != nil {
			return err
		}
		pdf.SetInfo(*infoRef)
	}
	if metaRef != nil {
		err = pdf.WriteObject(doc.Metadata, *metaRef)
		if err != nil {
			return err
		}
	}

	var id [16]byte
	if doc.ID != nil {
		id = *doc.ID
	} else {
		copy(id[:], h.Sum(nil))
	}

	err = pdf.WriteXRef()
	if err != nil {
		return err
	}
	err = pdf.WriteTrailer(catalogRef, id)
	if err != nil {
		return err
	}
	return pdf.WriteEOF()
}
