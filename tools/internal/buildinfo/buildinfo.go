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

package buildinfo

import (
	"runtime/debug"
)

// Short returns the name and version of a command line tool, for use in
// usage messages and as the /Producer of generated files, e.g.
// "pdfgen-blank (seehuhn.de/go/pdfgen v0.1.0)".
//
// Development builds use the abbreviated VCS revision instead of the
// version.  If no build information is available, only the name is returned.
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return toolName + " (" + info.Main.Path + " " + v + ")"
	}

	rev := revision(info.Settings)
	if rev == "" {
		return toolName
	}
	return toolName + " (" + info.Main.Path + " " + rev + ")"
}

// revision extracts the VCS revision from the build settings, shortened to
// eight characters and marked if the working tree had local changes.
func revision(settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}
