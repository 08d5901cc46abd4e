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

package layout

import (
	"fmt"

	"github.com/jetsetilly/bin2rpk/pcb"
)

// Filename of the layout description inside the archive.
const Filename = "layout.xml"

// version of the romset format
const romsetVersion = "1.0"

// resource and socket identifiers for auxiliary RAM
const (
	ramResource = "ramimage"
	ramSocket   = "ram_socket"
)

// BankFilename returns the name of the archive file containing the bank.
func BankFilename(bank int) string {
	return fmt.Sprintf("rom%d.bin", bank)
}

// the resource and socket identifiers follow the emulator's convention for
// the two chip boards: romimage/rom_socket for the first bank and
// rom2image/rom2_socket for the second. further banks continue the series
func bankResource(bank int) string {
	if bank == 0 {
		return "romimage"
	}
	return fmt.Sprintf("rom%dimage", bank+1)
}

func bankSocket(bank int) string {
	if bank == 0 {
		return "rom_socket"
	}
	return fmt.Sprintf("rom%d_socket", bank+1)
}

// Socket describes the assignment of a resource to a socket on the board.
type Socket struct {
	ID       string
	Resource string

	// the file supplying the contents of the socket. empty for RAM sockets
	File string

	// the bank number. -1 for RAM sockets
	Bank int
}

// Layout is the layout description for a single cartridge.
type Layout struct {
	Board pcb.Board
	Name  string

	// sockets in the order they appear in the layout. ROM sockets are first
	// and are in address order
	Sockets []Socket

	root *Element
}

// Build the layout description for the board. The program name is carried
// in the description but is not checked until the layout is serialised.
func Build(board pcb.Board, programName string) *Layout {
	l := &Layout{
		Board: board,
		Name:  programName,
	}

	for b := 0; b < board.Banks; b++ {
		l.Sockets = append(l.Sockets, Socket{
			ID:       bankSocket(b),
			Resource: bankResource(b),
			File:     BankFilename(b),
			Bank:     b,
		})
	}

	if board.RAM != nil {
		l.Sockets = append(l.Sockets, Socket{
			ID:       ramSocket,
			Resource: ramResource,
			Bank:     -1,
		})
	}

	l.root = NewElement("romset", "version", romsetVersion, "name", programName)
	resources := l.root.Add("resources")
	configuration := l.root.Add("configuration")
	p := configuration.Add("pcb", "type", board.Name)

	for _, s := range l.Sockets {
		if s.Bank >= 0 {
			resources.Add("rom", "id", s.Resource, "file", s.File)
		} else {
			resources.Add("ram", "id", s.Resource,
				"size", fmt.Sprintf("%d", board.RAM.Size),
				"type", string(board.RAM.Storage))
		}
		p.Add("socket", "id", s.ID, "uses", s.Resource)
	}

	return l
}

// Root returns the root element of the layout tree.
func (l *Layout) Root() *Element {
	return l.root
}

// ROMSockets returns the number of sockets that are supplied by a file.
func (l *Layout) ROMSockets() int {
	var n int
	for _, s := range l.Sockets {
		if s.Bank >= 0 {
			n++
		}
	}
	return n
}

// Files returns the names of the files referenced by the layout in bank
// order.
func (l *Layout) Files() []string {
	var f []string
	for _, s := range l.Sockets {
		if s.File != "" {
			f = append(f, s.File)
		}
	}
	return f
}
