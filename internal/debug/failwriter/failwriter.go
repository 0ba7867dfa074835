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

// Package failwriter provides an io.Writer which fails after a given number
// of bytes, for testing error handling.
package failwriter

import (
	"errors"
	"io"
)

// ErrFull is the default error returned once the byte budget is used up.
var ErrFull = errors.New("failwriter: budget exhausted")

// Writer accepts Budget bytes and then fails.  The accepted bytes are
// stored in Data.
type Writer struct {
	Data []byte

	// Budget is the number of bytes accepted before writes fail.
	Budget int

	// Err is returned once the budget is exhausted.  If Err is nil,
	// ErrFull is used.
	Err error

	// Short, if set, makes the write which exceeds the budget return a
	// short count together with a nil error, so that the caller has to
	// detect the problem via io.ErrShortWrite.
	Short bool
}

// Write implements the [io.Writer] interface.
func (w *Writer) Write(p []byte) (int, error) {
	room := w.Budget - len(w.Data)
	if room >= len(p) {
		w.Data = append(w.Data, p...)
		return len(p), nil
	}
	if room < 0 {
		room = 0
	}
	w.Data = append(w.Data, p[:room]...)
	if w.Short {
		return room, nil
	}
	err := w.Err
	if err == nil {
		err = ErrFull
	}
	return room, err
}

var _ io.Writer = (*Writer)(nil)
