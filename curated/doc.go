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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is the identity of the error. Packages that want callers to be
// able to distinguish failures export their patterns as constants:
//
//	const InvalidImageSize = "pcb: invalid image size (%d bytes)"
//
//	err := curated.Errorf(InvalidImageSize, len(data))
//
//	if curated.Is(err, InvalidImageSize) {
//		...
//	}
//
// The Has() function is like Is() but also looks inside any curated errors
// that were used as placeholder values, so a wrapped error can be found:
//
//	e := curated.Errorf("rpk: %v", err)
//	curated.Has(e, InvalidImageSize) == true
//
// Error messages are de-duplicated when the leading parts of a message are
// the same. For example, wrapping "rpk: sink: file exists" with the pattern
// "rpk: %v" produces "rpk: sink: file exists" and not "rpk: rpk: sink: file
// exists".
//
// The offending value of an error can be retrieved with the Value() function.
package curated
