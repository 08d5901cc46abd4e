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

import "io"

// Open and return an io.ReadSeeker for the specified filename. Filename can
// be inside an archive supported by archivefs.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and
// any errors.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// ReadFile returns the contents of the specified filename. Filename can be
// inside an archive supported by archivefs.
func ReadFile(filename string) ([]byte, error) {
	r, sz, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	b := make([]byte, sz)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}
