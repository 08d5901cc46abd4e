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

package prefs

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/jetsetilly/bin2rpk/curated"
)

// Value represents the actual Go preference value.
type Value = string

// preferences specified on the command line. each entry is a map of
// key/value pairs and values are removed from the map as they are used
var commandLineStack []map[string]Value

// SizeCommandLineStack returns the number of entries in the command line
// stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// parseCommandLine splits a prefs string into key/value pairs. Empty entries
// are ignored. Every key must be in the Keys list and may only appear once.
func parseCommandLine(prefs string) (map[string]Value, error) {
	m := make(map[string]Value)

	for _, p := range strings.Split(prefs, ";") {
		if strings.TrimSpace(p) == "" {
			continue
		}

		k, v, ok := strings.Cut(p, "::")
		if !ok {
			return nil, curated.Errorf(PrefsError, fmt.Sprintf("%q is not a key::value pair", strings.TrimSpace(p)))
		}

		k = strings.ToLower(strings.TrimSpace(k))
		if !slices.Contains(Keys, k) {
			return nil, curated.Errorf(PrefsError, fmt.Sprintf("unknown preference (%s)", k))
		}
		if _, ok := m[k]; ok {
			return nil, curated.Errorf(PrefsError, fmt.Sprintf("%s specified more than once", k))
		}

		m[k] = strings.TrimSpace(v)
	}

	return m, nil
}

// PushCommandLineStack adds a new set of preferences to the stack. The prefs
// string is a list of key/value pairs separated by a semi-colon. Keys and
// values are separated by a double colon:
//
//	output.dir::roms; s3.bucket::cartridges
//
// Nothing is added to the stack if the string cannot be parsed.
func PushCommandLineStack(prefs string) error {
	m, err := parseCommandLine(prefs)
	if err != nil {
		return err
	}
	commandLineStack = append(commandLineStack, m)
	return nil
}

// PopCommandLineStack removes the most recent addition to the stack. Returns
// the entries that were never used as a prefs string.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	unused := make([]string, 0, len(top))
	for k, v := range top {
		unused = append(unused, fmt.Sprintf("%s::%s", k, v))
	}
	sort.Strings(unused)

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the top of the stack.
// The entry is removed so that it is only used once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, ""
}
