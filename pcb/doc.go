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

// Package pcb selects the cartridge board (the printed circuit board, or PCB,
// in the emulator's terminology) that is required to run a cartridge image.
//
// The TI-99/4A maps cartridge ROM into the 8K window at >6000->7FFF. Images
// larger than 8K need a board with bank switching and there are several
// incompatible ways of doing that. The Classify() function chooses the board
// from the size of the image. For one size class the size alone is not
// enough and the first byte of the image is consulted. See the Table() for
// the full list of rules.
//
// Classification is a pure function. It performs no logging and keeps no
// state between calls.
package pcb
