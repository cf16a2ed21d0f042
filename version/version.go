// This file is part of Cheat Console.
//
// Cheat Console is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cheat Console is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cheat Console.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Cheat Console"

// number is set by the linker for release builds
var number string

// Version contains the current version number of the project. It is
// "unreleased" for builds with vcs information but no version number and
// "local" for builds with neither.
var Version string

// Revision contains the vcs revision. It is suffixed with "+dirty" if the
// source had been modified but not committed.
var Revision string

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if Revision == "" {
		Revision = "no revision information"
	} else if modified {
		Revision = fmt.Sprintf("%s+dirty", Revision)
	}

	switch {
	case number != "":
		Version = number
	case vcs:
		Version = "unreleased"
	default:
		Version = "local"
	}
}

// Title returns the application name and version, suitable for a window
// title.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, Version)
}
