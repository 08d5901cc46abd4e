// This file is part of bin2rpk.
//
// bin2rpk is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bin2rpk is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bin2rpk.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "bin2rpk"

// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/bin2rpk/version.number=v1.0.0"
var number string

var (
	version   string
	revision  string
	goVersion string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if the binary was built from a VCS
// checkout without a version number and "local" if there is no version
// information at all, which is the case with "go run .".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary of the version suitable for the
// VERSION mode of the command line.
func String() string {
	s := strings.Builder{}
	s.WriteString(ApplicationName)
	s.WriteString(" ")
	s.WriteString(version)
	if number == "" || version != number {
		s.WriteString(fmt.Sprintf(" (%s)", revision))
	}
	if goVersion != "" {
		s.WriteString(fmt.Sprintf(" [%s]", goVersion))
	}
	return s.String()
}

func init() {
	revision, version, goVersion = fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) (rev string, ver string, gov string) {
	var vcs bool
	var modified bool

	if ok {
		gov = info.GoVersion
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		ver = number
	case vcs:
		ver = "unreleased"
	default:
		ver = "local"
	}

	return rev, ver, gov
}
