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

// Package metadata implements XMP metadata streams for PDF files.
package metadata

import (
	"bytes"
	"io"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen"
)

// PDF 2.0 sections: 14.3.2

// Stream represents an XMP metadata stream.
//
// The metadata may either refer to a PDF document as a whole, or to
// individual objects within the document.
type Stream struct {
	// Data is the XMP packet.  If Data is nil, an empty packet is written.
	Data *xmp.Packet

	// Pretty selects indented XML output.
	Pretty bool
}

// WriteTo writes the metadata as a PDF stream object.  The packet is
// serialised before anything is written to w, so that the /Length of the
// stream is known in advance.  If the packet cannot be serialised, the
// error is returned and nothing is written.
// This implements the [pdfgen.Object] interface.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	packet := s.Data
	if packet == nil {
		packet = xmp.NewPacket()
	}

	body := &bytes.Buffer{}
	err := packet.Write(body, &xmp.PacketOptions{Pretty: s.Pretty})
	if err != nil {
		return 0, err
	}

	stm := &pdfgen.Stream{
		Dict: pdfgen.Dict{
			"Type":    pdfgen.Name("Metadata"),
			"Subtype": pdfgen.Name("XML"),
		},
		Data: body.Bytes(),
	}
	return stm.WriteTo(w)
}
