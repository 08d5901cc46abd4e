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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions is the list of file extensions that are recognised as
// archives.
var ArchiveExtensions = [...]string{".ZIP"}

// TrimArchiveExt removes the archive extension from the filename, if it has
// one.
func TrimArchiveExt(s string) string {
	sext := strings.ToUpper(filepath.Ext(s))
	for _, ext := range ArchiveExtensions {
		if sext == ext {
			return strings.TrimSuffix(s, filepath.Ext(s))
		}
	}
	return s
}
