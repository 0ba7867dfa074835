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

// Licensify adds the license header to all Go source files of the module.
//
// The command must be run from the root directory of the module.  Files which
// already start with the header are left alone.  With -check, no files are
// changed and the command exits with status 1 if any file lacks the header.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/pdfgen - a low-level encoder for PDF files
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

`

func main() {
	check := flag.Bool("check", false, "only report files without license header")
	flag.Parse()

	missing := 0
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		updated, status := addHeader(body)
		switch status {
		case statusOK:
			return nil
		case statusUnknown:
			fmt.Println("ATTENTION " + path)
			return nil
		}

		missing++
		if *check {
			fmt.Println("missing header: " + path)
			return nil
		}
		fmt.Println("updating " + path)
		return os.WriteFile(path, updated, 0o644)
	})
	if err != nil {
		log.Fatal(err)
	}
	if *check && missing > 0 {
		os.Exit(1)
	}
}

type status int

const (
	statusOK status = iota
	statusAdded
	statusUnknown
)

// addHeader returns body with the license header prepended.  Files which
// already have the header, and files which start with anything other than
// a comment or the package clause, are returned unchanged.
func addHeader(body []byte) ([]byte, status) {
	if bytes.HasPrefix(body, []byte(header)) {
		return body, statusOK
	}
	if !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("// ")) {
		return body, statusUnknown
	}
	if bytes.HasPrefix(body, []byte("// Copyright")) || bytes.HasPrefix(body, []byte("// seehuhn.de/")) {
		return body, statusUnknown
	}

	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	res = append(res, body...)
	return res, statusAdded
}
