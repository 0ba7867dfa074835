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

import "errors"

// Errors returned by the [Writer].  Failures of the underlying io.Writer are
// passed through unchanged and are never wrapped in these errors.
var (
	// ErrSequence indicates that a Writer method was called in a state
	// where it is not allowed, for example an object written after the
	// cross-reference table.
	ErrSequence = errors.New("PDF writer methods called out of order")

	// ErrObjectNumber indicates that an indirect object was written with an
	// object number other than the next unused one.
	ErrObjectNumber = errors.New("unexpected object number")

	// ErrFieldOverflow indicates that a value does not fit into a fixed
	// width field of the cross-reference table.
	ErrFieldOverflow = errors.New("value too large for fixed width field")
)

// SequenceError is returned when the methods of a [Writer] are used in a way
// which violates the structure of a PDF file.  These errors are programming
// errors of the caller.
type SequenceError struct {
	// Op is the name of the Writer method which failed.
	Op string

	// State describes what the Writer had done before the call.
	State string

	Err error
}

func (err *SequenceError) Error() string {
	return "pdfgen: " + err.Op + " after " + err.State + ": " + err.Err.Error()
}

func (err *SequenceError) Unwrap() error {
	return err.Err
}
