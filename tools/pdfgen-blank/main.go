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

// Pdfgen-blank writes a PDF file which consists of blank pages.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/tools/internal/buildinfo"
	"seehuhn.de/go/pdfgen/tools/internal/profile"
)

var (
	outArg     = flag.String("o", "out.pdf", "output file name, or - for standard output")
	force      = flag.Bool("f", false, "overwrite output file if it exists")
	numPages   = flag.Int("n", 1, "number of pages")
	sizeArg    = flag.String("size", "A4", "page size: A4, A5, letter, legal or `W`x`H` in points")
	titleArg   = flag.String("title", "", "document title")
	langArg    = flag.String("lang", "", "document language, e.g. en-GB")
	versionArg = flag.String("pdf", "2.0", "PDF version")
	verbose    = flag.Bool("v", false, "log the file structure to standard error")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdfgen-blank - write a PDF file with blank pages\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdfgen-blank"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdfgen-blank [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdfgen-blank -n 3 -size letter -o blank.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdfgen-blank -size 200x100 -title Test -o - | less\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	doc, err := buildDocument()
	if err != nil {
		return err
	}

	if *outArg == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("not writing binary PDF data to a terminal")
		}
		return doc.Write(os.Stdout)
	}

	if !*force {
		if _, err := os.Stat(*outArg); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", *outArg)
		}
	}
	return writeFile(*outArg, doc)
}

func buildDocument() (*pdfgen.Document, error) {
	if *numPages < 0 {
		return nil, fmt.Errorf("invalid number of pages %d", *numPages)
	}
	box, err := parseSize(*sizeArg)
	if err != nil {
		return nil, err
	}
	ver, err := pdfgen.ParseVersion(*versionArg)
	if err != nil {
		return nil, err
	}

	opt := &pdfgen.WriterOptions{Version: ver}
	if *verbose {
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	doc := &pdfgen.Document{
		Pages:   make([]pdfgen.Rectangle, *numPages),
		Options: opt,
		Info: &pdfgen.Info{
			Title:        *titleArg,
			Producer:     buildinfo.Short("pdfgen-blank"),
			CreationDate: time.Now(),
		},
	}
	for i := range doc.Pages {
		doc.Pages[i] = box
	}
	if *langArg != "" {
		doc.Lang, err = language.Parse(*langArg)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func writeFile(fname string, doc *pdfgen.Document) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = doc.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// parseSize converts a paper name or a size of the form "WxH" into a
// media box.
func parseSize(s string) (pdfgen.Rectangle, error) {
	switch strings.ToLower(s) {
	case "a4":
		return pdfgen.A4, nil
	case "a5":
		return pdfgen.A5, nil
	case "letter":
		return pdfgen.Letter, nil
	case "legal":
		return pdfgen.Legal, nil
	}

	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return pdfgen.Rectangle{}, fmt.Errorf("invalid page size %q", s)
	}
	w, err1 := strconv.ParseFloat(ws, 64)
	h, err2 := strconv.ParseFloat(hs, 64)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return pdfgen.Rectangle{}, fmt.Errorf("invalid page size %q", s)
	}
	return pdfgen.Rectangle{URx: w, URy: h}, nil
}
