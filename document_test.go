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
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen/internal/debug/failwriter"
)

func TestEmptyDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	doc := &Document{}
	err := doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "%PDF-2.0\n%%EOF" {
		t.Errorf("got %q", buf.String())
	}
}

func TestSinglePage(t *testing.T) {
	id := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	doc := &Document{
		Pages: []Rectangle{{URx: 100, URy: 100}},
		ID:    &id,
	}
	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := "%PDF-2.0\n" +
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /Resources <<  >> /MediaBox [0 0 100 100] >>\nendobj\n" +
		"xref\n" +
		"0 4\n" +
		"0000000000 65535 f \n" +
		"0000000009 00000 n \n" +
		"0000000058 00000 n \n" +
		"0000000115 00000 n \n" +
		"trailer\n" +
		"       << /Size 4\n" +
		"       /Root 1 0 R\n" +
		"       /ID [<0102030405060708090a0b0c0d0e0f10> <0102030405060708090a0b0c0d0e0f10>]\n" +
		"        >>\n" +
		"startxref\n" +
		"204\n" +
		"%%EOF"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("wrong output (-want +got):\n%s", diff)
	}
}

var xrefEntry = regexp.MustCompile(`(?m)^(\d{10}) 00000 n $`)

// checkStructure verifies that the cross-reference table and the trailer
// of a complete PDF file match the positions of the objects in the file.
func checkStructure(t *testing.T, out string) {
	t.Helper()

	xrefPos := strings.LastIndex(out, "xref\n0 ")
	if xrefPos < 0 {
		t.Fatal("no xref table")
	}
	body, tail := out[:xrefPos], out[xrefPos:]

	entries := xrefEntry.FindAllStringSubmatch(tail, -1)
	for i, m := range entries {
		pos, _ := strconv.Atoi(m[1])
		prefix := strconv.Itoa(i+1) + " 0 obj\n"
		if !strings.HasPrefix(body[pos:], prefix) {
			t.Errorf("object %d: offset %d does not point to the object", i+1, pos)
		}
	}
	if n := strings.Count(body, " 0 obj\n"); n != len(entries) {
		t.Errorf("%d objects, but %d xref entries", n, len(entries))
	}
	wantSize := "<< /Size " + strconv.Itoa(len(entries)+1) + "\n"
	if !strings.Contains(tail, wantSize) {
		t.Errorf("trailer does not contain %q", wantSize)
	}
	wantStart := "startxref\n" + strconv.Itoa(xrefPos) + "\n%%EOF"
	if !strings.HasSuffix(tail, wantStart) {
		t.Errorf("file does not end with %q", wantStart)
	}
}

func TestFullDocument(t *testing.T) {
	doc := &Document{
		Pages: []Rectangle{A4, Letter, A4, {LLx: -10, LLy: -10, URx: 10.5, URy: 10.25}},
		Info: &Info{
			Title:        "Test Document",
			Author:       "Jörg",
			Producer:     "pdfgen",
			CreationDate: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		},
		Metadata: &Stream{
			Dict: Dict{"Type": Name("Metadata"), "Subtype": Name("XML")},
			Data: []byte("<x:xmpmeta xmlns:x=\"adobe:ns:meta/\"/>"),
		},
		Lang:    language.BritishEnglish,
		Options: &WriterOptions{Version: V1_7},
	}
	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "%PDF-1.7\n") {
		t.Errorf("wrong header: %q", out[:9])
	}
	checkStructure(t, out)

	for _, want := range []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R /Metadata 8 0 R /Lang (en-GB) >>\nendobj\n",
		"<< /Type /Pages /Kids [3 0 R 4 0 R 5 0 R 6 0 R] /Count 4 >>",
		"/MediaBox [-10 -10 10.5 10.25]",
		"7 0 obj\n<< /Title (Test Document) /Author <feff004a00f600720067> /Producer (pdfgen) /CreationDate (D:20261018120000+00'00) >>\nendobj\n",
		"/Length 37 /Subtype /XML /Type /Metadata >>\nstream\n",
		"       /Info 7 0 R\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestDocumentID(t *testing.T) {
	doc := &Document{
		Pages: []Rectangle{A4},
		Info:  &Info{Title: "ID test"},
	}

	write := func() string {
		buf := &bytes.Buffer{}
		err := doc.Write(buf)
		if err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}
	idOf := func(out string) string {
		k := strings.Index(out, "/ID [<")
		if k < 0 {
			t.Fatal("no /ID in trailer")
		}
		return out[k+6 : k+6+32]
	}

	first := write()
	second := write()
	if first != second {
		t.Error("output is not deterministic")
	}

	doc.Info.Title = "other title"
	third := write()
	if idOf(first) == idOf(third) {
		t.Error("different documents have the same ID")
	}

	id := [16]byte{0xff}
	doc.ID = &id
	fixed := write()
	if got := idOf(fixed); got != "ff000000000000000000000000000000" {
		t.Errorf("wrong ID %s", got)
	}
}

func TestDocumentSinkError(t *testing.T) {
	doc := &Document{
		Pages: []Rectangle{A4, A5},
		Info:  &Info{Title: "broken"},
	}
	full := &bytes.Buffer{}
	err := doc.Write(full)
	if err != nil {
		t.Fatal(err)
	}

	errTest := errors.New("test error")
	for budget := 0; budget < full.Len(); budget += 7 {
		w := &failwriter.Writer{Budget: budget, Err: errTest}
		err := doc.Write(w)
		if err != errTest {
			t.Errorf("budget %d: got error %v, want %v", budget, err, errTest)
		}
		if !bytes.Equal(w.Data, full.Bytes()[:len(w.Data)]) {
			t.Errorf("budget %d: output differs from the complete file", budget)
		}
	}
}

func TestDocumentInvalidVersion(t *testing.T) {
	doc := &Document{
		Pages:   []Rectangle{A4},
		Options: &WriterOptions{Version: Version(99)},
	}
	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err == nil {
		t.Error("invalid version accepted")
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes written", buf.Len())
	}
}
