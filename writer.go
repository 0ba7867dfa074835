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
	"errors"
	"io"
	"log/slog"
	"slices"
)

// WriterOptions allows to influence the way a PDF file is written.
type WriterOptions struct {
	// Version is the PDF version given in the file header.
	// The default is PDF 2.0.
	Version Version

	// Logger, if not nil, receives debug records about the structure of
	// the file being written.
	Logger *slog.Logger
}

// Writer writes the structure of a PDF file to an [io.Writer].
//
// The Writer keeps track of the number of bytes written, so that the byte
// offsets in the cross-reference table always match the output.  The methods
// must be called in the following order:
//
//  1. WriteHeader
//  2. WriteObject, any number of times
//  3. WriteXRef
//  4. WriteTrailer
//  5. WriteEOF
//
// As a special case, WriteEOF may directly follow WriteHeader, and the trailer
// may be omitted.  Calls in any other order fail with a [*SequenceError].
//
// Once the underlying io.Writer has returned an error, all further calls
// return the same error.  Bytes already written are not taken back, so the
// output then contains an incomplete PDF file.
//
// A Writer must not be used concurrently from more than one goroutine.
type Writer struct {
	w   io.Writer
	ver Version
	log *slog.Logger

	pos     int64
	xref    XRefTable
	xrefPos int64
	info    *Reference
	nextRef uint32

	state state
	err   error
}

// NewWriter prepares a PDF file for writing.  Nothing is written to w until
// the first method call.
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}

	ver := opt.Version
	if ver == 0 {
		ver = V2_0
	}
	if _, err := ver.ToString(); err != nil {
		return nil, err
	}

	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pdf := &Writer{
		w:       w,
		ver:     ver,
		log:     logger,
		nextRef: 1,
	}
	return pdf, nil
}

// Pos returns the number of bytes written so far.
func (pdf *Writer) Pos() int64 {
	return pdf.pos
}

// XRefOffset returns the byte offset of the cross-reference table.
// The result is only meaningful after WriteXRef has been called.
func (pdf *Writer) XRefOffset() int64 {
	return pdf.xrefPos
}

// Alloc allocates an object number for an indirect object.
// Allocated objects must be written in the order of their object numbers.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef)
	pdf.nextRef++
	return ref
}

// SetInfo sets the reference to the document information dictionary, to be
// included in the trailer.
func (pdf *Writer) SetInfo(ref Reference) {
	pdf.info = &ref
}

// WriteHeader writes the first line of the PDF file.
func (pdf *Writer) WriteHeader() error {
	if err := pdf.check("WriteHeader", stateFresh); err != nil {
		return err
	}
	header, err := pdf.ver.header()
	if err != nil {
		return err
	}
	if _, err := pdf.write(header, newline); err != nil {
		return err
	}
	pdf.state = stateHeader

	pdf.log.Debug("header written", slog.String("version", pdf.ver.String()))
	return nil
}

// WriteObject writes obj as an indirect object with the given reference.
//
// The byte offset of the object is recorded in the cross-reference table.
// References must use generation 0, and objects must be written in
// order of their object numbers, starting with 1.
func (pdf *Writer) WriteObject(obj Object, ref Reference) error {
	if err := pdf.check("WriteObject", stateHeader, stateObjects); err != nil {
		return err
	}
	if ref.Generation != 0 || int64(ref.Number) != int64(pdf.xref.Len()) {
		return &SequenceError{
			Op:    "WriteObject " + ref.String(),
			State: pdf.state.String(),
			Err:   ErrObjectNumber,
		}
	}
	if obj == nil {
		obj = Null{}
	}

	pos := pdf.pos
	pdf.xref.Record(pos)
	if ref.Number >= pdf.nextRef {
		pdf.nextRef = ref.Number + 1
	}
	pdf.state = stateObjects

	n, err := pdf.write(ref.Def(), newline, obj, newline, endObjMarker, newline)
	if err != nil {
		return err
	}

	pdf.log.Debug("object written",
		slog.Uint64("number", uint64(ref.Number)),
		slog.Int64("offset", pos),
		slog.Int64("bytes", n))
	return nil
}

// WriteXRef writes the cross-reference table.  The current position is used
// as the start of the table in the trailer.
func (pdf *Writer) WriteXRef() error {
	if err := pdf.check("WriteXRef", stateHeader, stateObjects); err != nil {
		return err
	}

	pos := pdf.pos
	n, err := pdf.xref.WriteTo(pdf.w)
	pdf.pos += n
	if err != nil {
		// An offset which does not fit leaves the output untouched, and
		// the caller may still end the file.
		if n == 0 && errors.Is(err, ErrFieldOverflow) {
			return err
		}
		pdf.fail(err)
		return err
	}
	pdf.xrefPos = pos
	pdf.state = stateXRef

	pdf.log.Debug("xref written",
		slog.Int64("offset", pos),
		slog.Int("entries", pdf.xref.Len()))
	return nil
}

// WriteTrailer writes the trailer, using the given document catalog and file
// identifier.
func (pdf *Writer) WriteTrailer(root Reference, id [16]byte) error {
	if err := pdf.check("WriteTrailer", stateXRef); err != nil {
		return err
	}

	trailer := &Trailer{
		Size:       pdf.xref.Len(),
		Root:       root,
		Info:       pdf.info,
		ID:         id,
		XRefOffset: pdf.xrefPos,
	}
	if _, err := pdf.write(trailer); err != nil {
		return err
	}
	pdf.state = stateTrailer

	pdf.log.Debug("trailer written",
		slog.Int("size", trailer.Size),
		slog.String("root", root.String()))
	return nil
}

// WriteEOF writes the end-of-file marker.  This must be the last call.
// The underlying io.Writer is not closed.
func (pdf *Writer) WriteEOF() error {
	if err := pdf.check("WriteEOF", stateHeader, stateXRef, stateTrailer); err != nil {
		return err
	}
	if _, err := pdf.write(eofMarker); err != nil {
		return err
	}
	pdf.state = stateDone

	pdf.log.Debug("eof written", slog.Int64("size", pdf.pos))
	return nil
}

// check verifies that the writer is in one of the allowed states.
func (pdf *Writer) check(op string, allowed ...state) error {
	if pdf.err != nil {
		return pdf.err
	}
	if !slices.Contains(allowed, pdf.state) {
		return &SequenceError{
			Op:    op,
			State: pdf.state.String(),
			Err:   ErrSequence,
		}
	}
	return nil
}

// write writes the given parts and advances the position by the number of
// bytes written.  Errors from the underlying io.Writer are remembered and
// stop all further output.
func (pdf *Writer) write(parts ...Object) (int64, error) {
	n, err := WriteChain(pdf.w, parts...)
	pdf.pos += n
	if err != nil {
		pdf.fail(err)
	}
	return n, err
}

// fail marks the writer as broken.
func (pdf *Writer) fail(err error) {
	pdf.err = err
	pdf.log.Debug("write failed",
		slog.Int64("pos", pdf.pos),
		slog.Any("err", err))
}

// state describes how far the writing of a PDF file has progressed.
type state int

const (
	stateFresh state = iota
	stateHeader
	stateObjects
	stateXRef
	stateTrailer
	stateDone
)

func (s state) String() string {
	switch s {
	case stateFresh:
		return "start of file"
	case stateHeader:
		return "header"
	case stateObjects:
		return "objects"
	case stateXRef:
		return "cross-reference table"
	case stateTrailer:
		return "trailer"
	case stateDone:
		return "end-of-file marker"
	}
	return "unknown state"
}
