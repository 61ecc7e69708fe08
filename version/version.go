// This file is part of dmgpad.
//
// dmgpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dmgpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dmgpad.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of dmgpad.
//
// The version number is set at link time with:
//
//	-ldflags "-X github.com/dmgpad/dmgpad/version.number=v1.0.0"
//
// Otherwise the version is derived from the VCS information that the Go
// toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "dmgpad"

// if number is empty then the project was not built with a version number
var number string

// revision contains the vcs revision. If the source has been modified but has
// not been committed then the revision string will be suffixed with "+dirty"
var revision string

// version contains the current version number of the project
//
// If the version string is "unreleased" then the project has been built
// without a version number but with vcs information.
//
// If the version string is "local" then there is no version number and no vcs
// information. This can happen when compiling/running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered "release" version. if release is true then the revision
// information should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Banner returns a single line describing the application and version.
func Banner() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	vcs, vcsRevision, vcsModified := readBuildInfo()

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}

func readBuildInfo() (vcs bool, vcsRevision string, vcsModified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}
	return
}
