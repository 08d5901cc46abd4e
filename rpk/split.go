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

	"github.com/jetsetilly/bin2rpk/curated"
)

// SplitBanks divides the image into bankCount slices of bankSize bytes. The
// slices are in address order and share memory with the image.
func SplitBanks(image []byte, bankCount int, bankSize int) ([][]byte, error) {
	if bankCount <= 0 || bankSize <= 0 {
		return nil, curated.Errorf(InternalConsistency,
			fmt.Sprintf("cannot split image into %d banks of %d bytes", bankCount, bankSize))
	}

	if len(image) != bankCount*bankSize {
		return nil, curated.Errorf(InternalConsistency,
			fmt.Sprintf("image of %d bytes is not %d banks of %d bytes", len(image), bankCount, bankSize))
	}

	banks := make([][]byte, bankCount)
	for i := range banks {
		o := i * bankSize

		// capacity is limited so that an append to a bank can never write
		// into the following bank
		banks[i] = image[o : o+bankSize : o+bankSize]
	}

	return banks, nil
}
