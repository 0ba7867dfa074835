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
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/pdfgen/internal/float"
)

// Object is implemented by everything which can be written into a PDF file,
// either as the body of an indirect object or as a value inside a dictionary
// or an array.
//
// WriteTo writes the PDF representation of the object to w and returns the
// number of bytes written.  The only source of errors is w itself.
// Every Object is an [io.WriterTo].
type Object interface {
	WriteTo(w io.Writer) (int64, error)
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// WriteTo implements the [Object] interface.
func (x Bool) WriteTo(w io.Writer) (int64, error) {
	if x {
		return Keyword("true").WriteTo(w)
	}
	return Keyword("false").WriteTo(w)
}

// Null is the PDF null object.
type Null struct{}

// WriteTo implements the [Object] interface.
func (Null) WriteTo(w io.Writer) (int64, error) {
	return Keyword("null").WriteTo(w)
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// WriteTo implements the [Object] interface.
func (x Integer) WriteTo(w io.Writer) (int64, error) {
	return Keyword(strconv.FormatInt(int64(x), 10)).WriteTo(w)
}

// Real represents a real number in a PDF file.
// The number is written in the shortest decimal form which reads back to the
// same value, without exponent and without trailing zeros.
type Real float64

// WriteTo implements the [Object] interface.
func (x Real) WriteTo(w io.Writer) (int64, error) {
	return Keyword(float.Format(float64(x), -1)).WriteTo(w)
}

// Name represents a name in a PDF file.  The leading slash is not part of the
// value.
type Name string

// WriteTo implements the [Object] interface.
func (x Name) WriteTo(w io.Writer) (int64, error) {
	l := []byte(x)

	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range l {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.WriteTo(w)
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// String represents a string in a PDF file.  The character set encoding, if
// any, is determined by the context.
type String []byte

// WriteTo implements the [Object] interface.
//
// The string is written as a literal string, unless more than one third of
// the bytes would need escaping.  In this case, hexadecimal notation is used.
func (x String) WriteTo(w io.Writer) (int64, error) {
	l := []byte(x)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c == '\r' || c == '\n' || c == '\t' {
			continue
		}
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	if 3*len(funny) > len(l) {
		return HexString(x).WriteTo(w)
	}

	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	pos := 0
	for _, i := range funny {
		buf.Write(l[pos:i])
		switch c := l[i]; c {
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			fmt.Fprintf(buf, `\%03o`, c)
		}
		pos = i + 1
	}
	buf.Write(l[pos:])
	buf.WriteByte(')')
	return buf.WriteTo(w)
}

// HexString is a string which is always written in hexadecimal notation.
type HexString []byte

// WriteTo implements the [Object] interface.
func (x HexString) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 2*len(x)+2)
	buf = append(buf, '<')
	buf = hex.AppendEncode(buf, x)
	buf = append(buf, '>')
	return Raw(buf).WriteTo(w)
}

var utf16Encoder = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// TextString creates a String object using the "text string" encoding.
// Strings which consist of printable ASCII characters only are stored
// unchanged, all other strings are converted to UTF-16BE with a byte order
// mark.
func TextString(s string) String {
	ascii := true
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c > 0x7e {
			ascii = false
			break
		}
	}
	if ascii {
		return String(s)
	}

	enc, err := utf16Encoder.NewEncoder().String(s)
	if err != nil {
		// not valid UTF-8, keep the bytes as they are
		return String(s)
	}
	return String(enc)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

// Array represents an array of objects in a PDF file.
// Nil elements are written as null.
type Array []Object

// WriteTo implements the [Object] interface.
func (x Array) WriteTo(w io.Writer) (int64, error) {
	parts := make([]Object, 0, 2*len(x)+1)
	parts = append(parts, arrayOpen)
	for i, val := range x {
		if i > 0 {
			parts = append(parts, space)
		}
		if val == nil {
			val = Null{}
		}
		parts = append(parts, val)
	}
	parts = append(parts, arrayClose)
	return WriteChain(w, parts...)
}

// Dict represents a dictionary object in a PDF file.
//
// Entries are written in the order of their keys, so that the output does not
// depend on the order of map iteration.  Entries with a nil value are omitted.
// The empty dictionary is written as "<<  >>".
type Dict map[Name]Object

// WriteTo implements the [Object] interface.
func (x Dict) WriteTo(w io.Writer) (int64, error) {
	keys := maps.Keys(x)
	slices.Sort(keys)

	entries := make([]dictEntry, 0, len(keys))
	for _, key := range keys {
		if x[key] == nil {
			continue
		}
		entries = append(entries, dictEntry{key, x[key]})
	}
	return writeDict(w, entries...)
}

// dictEntry is a key/value pair in a dictionary with a fixed order of
// entries.
type dictEntry struct {
	key Name
	val Object
}

// writeDict writes a dictionary with the entries in the given order.
func writeDict(w io.Writer, entries ...dictEntry) (int64, error) {
	parts := make([]Object, 0, 4*len(entries)+2)
	parts = append(parts, dictOpen)
	for i, e := range entries {
		if i > 0 {
			parts = append(parts, space)
		}
		parts = append(parts, e.key, space, e.val)
	}
	parts = append(parts, dictClose)
	return WriteChain(w, parts...)
}

// Stream represents a stream object in a PDF file.
// The /Length entry of the dictionary is set automatically.
type Stream struct {
	Dict Dict
	Data []byte
}

// WriteTo implements the [Object] interface.
func (x *Stream) WriteTo(w io.Writer) (int64, error) {
	dict := maps.Clone(x.Dict)
	if dict == nil {
		dict = Dict{}
	}
	dict["Length"] = Integer(len(x.Data))

	return WriteChain(w,
		dict,
		Keyword("\nstream\n"),
		Raw(x.Data),
		Keyword("\nendstream"),
	)
}
