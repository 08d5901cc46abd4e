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
	"bytes"
	"os"

	"github.com/jetsetilly/bin2rpk/curated"
	"github.com/jetsetilly/bin2rpk/logger"
)

// Sink implementations store a bundle. A sink must store either the complete
// archive or nothing at all.
type Sink interface {
	Write(bundle *Bundle) error
}

// Discarder is implemented by sinks that can remove an archive they have
// already stored. MultiSink uses it to undo earlier sinks when a later sink
// fails.
type Discarder interface {
	Discard() error
}

// FileSink writes the archive to a file. The file must not already exist.
type FileSink struct {
	Path string
}

// Write implements the Sink interface.
func (s FileSink) Write(bundle *Bundle) error {
	// encode the archive completely before creating the file so that an
	// encoding error does not leave an empty or partial file behind
	b := &bytes.Buffer{}
	if err := Encode(bundle, b); err != nil {
		return curated.Errorf(SinkError, err)
	}

	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return curated.Errorf(SinkError, err)
	}

	_, err = f.Write(b.Bytes())
	if err == nil {
		err = f.Close()
	} else {
		_ = f.Close()
	}
	if err != nil {
		_ = os.Remove(s.Path)
		return curated.Errorf(SinkError, err)
	}

	logger.Logf(logger.Allow, "rpk", "written %s (%d bytes)", s.Path, b.Len())

	return nil
}

// Discard implements the Discarder interface. The file is removed.
func (s FileSink) Discard() error {
	if err := os.Remove(s.Path); err != nil {
		return curated.Errorf(SinkError, err)
	}
	logger.Logf(logger.Allow, "rpk", "removed %s", s.Path)
	return nil
}

// MultiSink writes the bundle to each sink in turn. It stops at the first
// sink that fails and discards the archive from the sinks that have already
// been written, where they implement Discarder. Sinks that cannot discard
// keep their copy.
type MultiSink []Sink

// Write implements the Sink interface.
func (m MultiSink) Write(bundle *Bundle) error {
	for i, s := range m {
		if err := s.Write(bundle); err != nil {
			for j := i - 1; j >= 0; j-- {
				if d, ok := m[j].(Discarder); ok {
					if derr := d.Discard(); derr != nil {
						logger.Logf(logger.Allow, "rpk", "%v", derr)
					}
				}
			}
			return err
		}
	}
	return nil
}
