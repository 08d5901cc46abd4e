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
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/bin2rpk/test"
)

func TestBuildInfo(t *testing.T) {
	rev, ver, gov := fromBuildInfo(nil, false)
	test.ExpectEquality(t, rev, "no revision information")
	test.ExpectEquality(t, ver, "local")
	test.ExpectEquality(t, gov, "")

	info := &debug.BuildInfo{
		GoVersion: "go1.22.1",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	rev, ver, gov = fromBuildInfo(info, true)
	test.ExpectEquality(t, rev, "abc123+dirty")
	test.ExpectEquality(t, ver, "unreleased")
	test.ExpectEquality(t, gov, "go1.22.1")
}

func TestString(t *testing.T) {
	s := String()
	test.ExpectSuccess(t, strings.HasPrefix(s, ApplicationName+" "))
}
