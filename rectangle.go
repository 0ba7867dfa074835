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

	"seehuhn.de/go/geom/rect"
)

// Rectangle is a rectangle in PDF user space, given by the coordinates of
// the lower-left and upper-right corners.  The coordinates are written as
// given, no normalisation takes place.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// RectangleOf converts a [rect.Rect] into a Rectangle.
func RectangleOf(r rect.Rect) Rectangle {
	return Rectangle{LLx: r.LLx, LLy: r.LLy, URx: r.URx, URy: r.URy}
}

// Rect returns the rectangle as a [rect.Rect].
func (x Rectangle) Rect() rect.Rect {
	return rect.Rect{LLx: x.LLx, LLy: x.LLy, URx: x.URx, URy: x.URy}
}

// WriteTo writes the rectangle as an array of four numbers.
// This implements the [Object] interface.
func (x Rectangle) WriteTo(w io.Writer) (int64, error) {
	return Numbers[float64]{x.LLx, x.LLy, x.URx, x.URy}.WriteTo(w)
}

// Paper sizes in PDF user space units.
var (
	A4     = Rectangle{URx: 595.276, URy: 841.89}
	A5     = Rectangle{URx: 419.528, URy: 595.276}
	Letter = Rectangle{URx: 612, URy: 792}
	Legal  = Rectangle{URx: 612, URy: 1008}
)
