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

// PageTree is an intermediate node of the page tree.
type PageTree struct {
	// Parent is the parent node.  This must be nil for the root of the tree.
	Parent *Reference

	// Kids are the immediate children of this node.
	Kids []Reference

	// Count is the number of pages below this node.  If Count is zero, the
	// number of kids is used.
	Count int
}

// WriteTo implements the [Object] interface.
func (x *PageTree) WriteTo(w io.Writer) (int64, error) {
	kids := make(Array, len(x.Kids))
	for i, ref := range x.Kids {
		kids[i] = ref
	}
	count := x.Count
	if count == 0 {
		count = len(x.Kids)
	}

	entries := []dictEntry{
		{"Type", Name("Pages")},
	}
	if x.Parent != nil {
		entries = append(entries, dictEntry{"Parent", *x.Parent})
	}
	entries = append(entries,
		dictEntry{"Kids", kids},
		dictEntry{"Count", Integer(count)},
	)
	return writeDict(w, entries...)
}
