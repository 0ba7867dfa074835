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

package metadata

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen"
)

func TestRoundTrip(t *testing.T) {
	packet := xmp.NewPacket()
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.Und, "Test Document")
	dc.Creator.Append(xmp.NewProperName("Test Author"))

	err := packet.Set(dc)
	if err != nil {
		t.Fatalf("failed to set properties: %v", err)
	}

	buf := &bytes.Buffer{}
	n, err := (&Stream{Data: packet}).WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("<< /Length ")) {
		t.Fatalf("unexpected start of stream: %q", out[:min(len(out), 20)])
	}
	start := bytes.Index(out, []byte("\nstream\n"))
	end := bytes.LastIndex(out, []byte("\nendstream"))
	if start < 0 || end < start {
		t.Fatalf("stream markers not found in %q", out)
	}
	body := out[start+8 : end]

	lengthField := "/Length " + strconv.Itoa(len(body)) + " "
	if !bytes.Contains(out[:start], []byte(lengthField)) {
		t.Errorf("wrong length in stream dictionary %q", out[:start])
	}
	if !bytes.Contains(out[:start], []byte("/Subtype /XML /Type /Metadata")) {
		t.Errorf("wrong stream dictionary %q", out[:start])
	}

	extracted, err := xmp.Read(bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	var originalDC, extractedDC xmp.DublinCore
	packet.Get(&originalDC)
	extracted.Get(&extractedDC)

	if diff := cmp.Diff(extractedDC, originalDC); diff != "" {
		t.Errorf("round trip failed (-got +want):\n%s", diff)
	}
}

func TestDocumentMetadata(t *testing.T) {
	packet := xmp.NewPacket()
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.English, "With Metadata")
	err := packet.Set(dc)
	if err != nil {
		t.Fatal(err)
	}

	doc := &pdfgen.Document{
		Pages:    []pdfgen.Rectangle{pdfgen.A4},
		Metadata: &Stream{Data: packet, Pretty: true},
	}
	buf := &bytes.Buffer{}
	err = doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"/Metadata 4 0 R",
		"4 0 obj\n<< /Length ",
		"With Metadata",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestEmptyStream(t *testing.T) {
	buf := &bytes.Buffer{}
	n, err := (&Stream{}).WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.Bytes()
	start := bytes.Index(out, []byte("\nstream\n"))
	end := bytes.LastIndex(out, []byte("\nendstream"))
	if start < 0 || end < start {
		t.Fatalf("stream markers not found in %q", out)
	}
	if !bytes.Contains(out[:start], []byte("/Subtype /XML /Type /Metadata")) {
		t.Errorf("wrong stream dictionary %q", out[:start])
	}
	_, err = xmp.Read(bytes.NewReader(out[start+8 : end]))
	if err != nil {
		t.Errorf("empty packet cannot be read back: %v", err)
	}
}
