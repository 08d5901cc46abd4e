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

package cartridgeloader

import (
	"path/filepath"
	"strings"
)

// FileType identifies the content of a cartridge file from its name.
type FileType int

// List of valid FileType values.
const (
	FileC FileType = iota
	FileD
	FileG
)

// Extension is the expected extension of cartridge files.
const Extension = ".bin"

// stem returns the filename without directory and without the .bin extension
func stem(filename string) string {
	s := filepath.Base(filename)
	if strings.HasSuffix(strings.ToLower(s), Extension) {
		s = s[:len(s)-len(Extension)]
	}
	return s
}

// TypeFromName returns the FileType implied by the filename. Files that do
// not end with a "d" or "g" are assumed to be "c" files.
func TypeFromName(filename string) FileType {
	s := strings.ToLower(stem(filename))
	switch {
	case strings.HasSuffix(s, "g"):
		return FileG
	case strings.HasSuffix(s, "d"):
		return FileD
	}
	return FileC
}

// CompanionName returns the name of the "d" file for a "c" file. The case of
// the final character is preserved. The returned bool is false if the name
// does not end with a "c".
func CompanionName(filename string) (string, bool) {
	base := filepath.Base(filename)
	s := stem(base)
	if len(s) == 0 {
		return "", false
	}

	var d string
	switch s[len(s)-1] {
	case 'c':
		d = "d"
	case 'C':
		d = "D"
	default:
		return "", false
	}

	return s[:len(s)-1] + d + base[len(s):], true
}

// Hint returns the banking hint for the filename. The hint is the last
// character of the name before the extension. The zero value is returned for
// an empty name.
func Hint(filename string) byte {
	s := strings.ToLower(stem(filename))
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// HintedBoard returns the board keyword implied by the banking hint, or the
// empty string if there is no hint.
//
//	'3' or '9'	379 (paged379i)
//	'7'		377 (paged377)
//	'8'		378 (paged378)
func HintedBoard(filename string) string {
	switch Hint(filename) {
	case '3', '9':
		return "379"
	case '7':
		return "377"
	case '8':
		return "378"
	}
	return ""
}
