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

package pcb

// Sentinel error patterns. Test for them with curated.Is() or curated.Has().
const (
	// the length is zero, negative or not a multiple of BankSize
	InvalidImageSize = "pcb: invalid image size (%d bytes)"

	// the length is a multiple of BankSize but no board can address it
	UnsupportedImageSize = "pcb: unsupported image size (%d bytes)"

	// the explicitly requested board cannot address the image
	IncompatibleOverride = "pcb: %s board cannot be used with a %d byte image"

	// the override keyword does not name a board
	UnknownVariant = "pcb: unknown board (%s)"
)
