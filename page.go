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

// Resources maps resource categories, for example /Font or /XObject, to
// dictionaries or to references of dictionaries.
// A page without resources has an empty resource dictionary.
type Resources Dict

// WriteTo implements the [Object] interface.
func (x Resources) WriteTo(w io.Writer) (int64, error) {
	return Dict(x).WriteTo(w)
}

// Page is a leaf of the page tree.  A Page cannot be changed after it has been
// created, the With* methods return modified copies.
type Page struct {
	parent    Reference
	resources Resources
	mediaBox  Rectangle
	contents  *Reference
}

// NewPage creates a blank page with the given parent node in the page tree
// and the given media box.  The page has no resources.
func NewPage(parent Reference, mediaBox Rectangle) *Page {
	return &Page{
		parent:   parent,
		mediaBox: mediaBox,
	}
}

// WithResources returns a copy of p which uses the given resources.
func (p *Page) WithResources(res Resources) *Page {
	q := *p
	q.resources = res
	return &q
}

// WithContents returns a copy of p which refers to the given content stream.
func (p *Page) WithContents(ref Reference) *Page {
	q := *p
	q.contents = &ref
	return &q
}

// Parent returns the page tree node which contains p.
func (p *Page) Parent() Reference {
	return p.parent
}

// MediaBox returns the boundaries of the physical medium of the page.
func (p *Page) MediaBox() Rectangle {
	return p.mediaBox
}

// WriteTo writes the page dictionary.  The entries appear in the order
// /Type, /Parent, /Resources, /MediaBox, followed by /Contents if the page
// has a content stream.
// This implements the [Object] interface.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	entries := []dictEntry{
		{"Type", Name("Page")},
		{"Parent", p.parent},
		{"Resources", p.resources},
		{"MediaBox", p.mediaBox},
	}
	if p.contents != nil {
		entries = append(entries, dictEntry{"Contents", *p.contents})
	}
	return writeDict(w, entries...)
}
