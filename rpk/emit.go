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
	"github.com/jetsetilly/bin2rpk/layout"
	"github.com/jetsetilly/bin2rpk/pcb"
)

// Assemble the layout description, the bank files and the metadata entry into
// a bundle. The files argument names the bank files and must be the same
// length as banks.
func Assemble(layoutXML []byte, files []string, banks [][]byte) (*Bundle, error) {
	if len(files) != len(banks) {
		return nil, curated.Errorf(InternalConsistency,
			fmt.Sprintf("layout references %d files but there are %d banks", len(files), len(banks)))
	}

	var bld Builder
	bld.Add(layout.Filename, layoutXML)
	for i := range banks {
		bld.Add(files[i], banks[i])
	}
	bld.Add(MetadataFilename, Metadata())

	return bld.Bundle()
}

// Emit creates the bundle for the image. The board should be the result of a
// call to pcb.Classify() for the same image.
//
// No bundle is returned if there is an error. The image is not modified and
// the returned bundle shares memory with it.
func Emit(board pcb.Board, programName string, image []byte) (*Bundle, error) {
	l := layout.Build(board, programName)

	x, err := layout.Serialize(l)
	if err != nil {
		return nil, err
	}

	banks, err := SplitBanks(image, board.Banks, pcb.BankSize)
	if err != nil {
		return nil, err
	}

	if l.ROMSockets() != len(banks) {
		return nil, curated.Errorf(InternalConsistency,
			fmt.Sprintf("layout has %d ROM sockets for %d banks", l.ROMSockets(), len(banks)))
	}

	return Assemble(x, l.Files(), banks)
}
