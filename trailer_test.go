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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrailer(t *testing.T) {
	id := [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	info := NewReference(7)

	cases := []struct {
		trailer *Trailer
		want    string
	}{
		{
			trailer: &Trailer{Size: 5, Root: NewReference(1), ID: id, XRefOffset: 153},
			want: "trailer\n" +
				"       << /Size 5\n" +
				"       /Root 1 0 R\n" +
				"       /ID [<000102030405060708090a0b0c0d0e0f> <000102030405060708090a0b0c0d0e0f>]\n" +
				"        >>\n" +
				"startxref\n" +
				"153\n",
		},
		{
			trailer: &Trailer{Size: 8, Root: NewReference(1), Info: &info, XRefOffset: 0},
			want: "trailer\n" +
				"       << /Size 8\n" +
				"       /Root 1 0 R\n" +
				"       /Info 7 0 R\n" +
				"       /ID [<00000000000000000000000000000000> <00000000000000000000000000000000>]\n" +
				"        >>\n" +
				"startxref\n" +
				"0\n",
		},
	}
	for i, test := range cases {
		buf := &bytes.Buffer{}
		n, err := test.trailer.WriteTo(buf)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.want, buf.String()); diff != "" {
			t.Errorf("%d: wrong trailer (-want +got):\n%s", i, diff)
		}
		if n != int64(buf.Len()) {
			t.Errorf("%d: reported %d bytes, wrote %d", i, n, buf.Len())
		}
	}
}

// TestTrailerColumns checks the alignment of the trailer dictionary: every
// key line starts after the width of the "trailer" keyword, and the closing
// delimiter is preceded by one more space.
func TestTrailerColumns(t *testing.T) {
	info := NewReference(2)
	buf := &bytes.Buffer{}
	_, err := (&Trailer{Size: 3, Root: NewReference(1), Info: &info}).WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(buf.String(), "\n")
	indent := len("trailer")
	for _, line := range lines[1:5] {
		if strings.TrimLeft(line, " ") != line[indent:] || line[indent] == ' ' {
			t.Errorf("line %q does not start in column %d", line, indent)
		}
	}
	if lines[5] != strings.Repeat(" ", indent+1)+">>" {
		t.Errorf("wrong closing line %q", lines[5])
	}
}
