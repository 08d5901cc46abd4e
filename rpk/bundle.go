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

package rpk

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/bin2rpk/curated"
)

// MetadataFilename is the name of the fixed metadata entry.
const MetadataFilename = "softinfo.xml"

// the metadata entry is the same for every archive
var metadata = []byte(`<?xml version='1.0' encoding='utf-8'?>
<softinfo version="1.0" />
`)

// Metadata returns a copy of the fixed metadata entry.
func Metadata() []byte {
	m := make([]byte, len(metadata))
	copy(m, metadata)
	return m
}

// Entry is a named file in the archive.
type Entry struct {
	Name string
	Data []byte
}

// Bundle is the complete contents of an archive. It should be created with
// a Builder or with the Emit() or Assemble() functions.
type Bundle struct {
	entries []Entry
}

// Entries returns the list of entries in the order they will be written.
func (b *Bundle) Entries() []Entry {
	e := make([]Entry, len(b.entries))
	copy(e, b.entries)
	return e
}

// Names returns the entry names in order.
func (b *Bundle) Names() []string {
	n := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		n = append(n, e.Name)
	}
	return n
}

// Get returns the data for the named entry.
func (b *Bundle) Get(name string) ([]byte, bool) {
	for _, e := range b.entries {
		if e.Name == name {
			return e.Data, true
		}
	}
	return nil, false
}

// Size returns the total uncompressed size of the bundle.
func (b *Bundle) Size() int {
	var n int
	for _, e := range b.entries {
		n += len(e.Data)
	}
	return n
}

// Builder accumulates entries for a Bundle. Errors are deferred until
// Bundle() is called so that the entries can be added without checking each
// one.
type Builder struct {
	entries []Entry
	names   map[string]bool
	err     error
}

// checkName returns an error if the name is not suitable for an archive
// entry. Names must be the same on every host so they use forward slashes
// only and must be relative.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty entry name")
	}
	if strings.Contains(name, `\`) {
		return fmt.Errorf("entry name contains a backslash (%s)", name)
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("entry name is absolute (%s)", name)
	}
	for _, p := range strings.Split(name, "/") {
		if p == "" || p == "." || p == ".." {
			return fmt.Errorf("entry name is not clean (%s)", name)
		}
	}
	return nil
}

// Add an entry to the builder.
func (bld *Builder) Add(name string, data []byte) {
	if bld.err != nil {
		return
	}

	if err := checkName(name); err != nil {
		bld.err = curated.Errorf(InternalConsistency, err)
		return
	}

	if bld.names == nil {
		bld.names = make(map[string]bool)
	}
	if bld.names[name] {
		bld.err = curated.Errorf(InternalConsistency, fmt.Sprintf("duplicate entry name (%s)", name))
		return
	}
	bld.names[name] = true

	bld.entries = append(bld.entries, Entry{Name: name, Data: data})
}

// Bundle returns the completed bundle or the first error encountered by
// Add(). The builder should not be used after Bundle() has been called.
func (bld *Builder) Bundle() (*Bundle, error) {
	if bld.err != nil {
		return nil, bld.err
	}
	if len(bld.entries) == 0 {
		return nil, curated.Errorf(InternalConsistency, "bundle has no entries")
	}
	b := &Bundle{entries: bld.entries}
	bld.entries = nil
	bld.names = nil
	return b, nil
}
