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

// Package rpk assembles and writes rpk archives. An rpk archive is a zip file
// containing a layout description (see the layout package), the cartridge ROM
// split into one file per bank, and a small metadata file.
//
// The Emit() function is the usual entry point. It takes the board chosen by
// the pcb package and produces a Bundle. The Bundle is handed to a Sink in a
// single call.
//
//	board, err := pcb.ClassifyImage(data, nil)
//	bundle, err := rpk.Emit(board, "Parsec", data)
//	err = rpk.FileSink{Path: "parsec.rpk"}.Write(bundle)
//
// Archives are reproducible. Emitting and encoding the same image twice
// produces identical bytes.
package rpk
