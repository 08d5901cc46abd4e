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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/bin2rpk/curated"
)

// BankSize is the size of the smallest unit of cartridge ROM that can be
// mapped into the TI-99/4A address space.
const BankSize = 8192

// MaxImageSize is the size of the largest image supported by any board.
const MaxImageSize = 256 * BankSize

// StorageKind describes how auxiliary RAM is retained by the emulator.
type StorageKind string

// List of valid StorageKind values.
const (
	// the contents of the RAM are saved between sessions (battery backed on
	// the real hardware)
	Persistent StorageKind = "persistent"
)

// AuxRAM describes writable memory provided by a board. The memory is
// allocated by the emulator when the cartridge is inserted and so it is never
// backed by a file in the archive.
type AuxRAM struct {
	Size    int
	Storage StorageKind
}

// ID is the symbolic identifier of a Variant.
type ID int

// List of valid ID values.
const (
	Standard ID = iota
	Paged16k
	Paged7
	MiniMemory
	MBX
	Paged378
	Paged379i
	Paged377
)

// Variant describes one type of cartridge board.
type Variant struct {
	ID ID

	// the PCB name as understood by the emulator. this is the value of the
	// type attribute of the pcb element in the layout description
	Name string

	// the keyword used to select the variant explicitly
	Keyword string

	// human readable description
	Description string

	// the range of bank counts the board can address. a non-paged board has
	// a MinBanks and MaxBanks of one
	MinBanks int
	MaxBanks int

	// nil if the board provides no auxiliary RAM
	RAM *AuxRAM
}

func (v Variant) String() string {
	return v.Name
}

// Paged returns true if the board supports more than one bank.
func (v Variant) Paged() bool {
	return v.MaxBanks > 1
}

// MaxSize returns the largest image size, in bytes, supported by the board.
func (v Variant) MaxSize() int {
	return v.MaxBanks * BankSize
}

// clone returns a copy of the variant that shares no memory with the
// catalogue
func (v Variant) clone() Variant {
	if v.RAM != nil {
		ram := *v.RAM
		v.RAM = &ram
	}
	return v
}

// accepts returns true if the board can address the specified number of banks.
func (v Variant) accepts(banks int) bool {
	return banks >= v.MinBanks && banks <= v.MaxBanks
}

var variants = []Variant{
	{
		ID:          Standard,
		Name:        "standard",
		Keyword:     "standard",
		Description: "8K ROM without bank switching",
		MinBanks:    1,
		MaxBanks:    1,
	},
	{
		ID:          Paged16k,
		Name:        "paged",
		Keyword:     "16k",
		Description: "two 8K ROM chips switched by writing to >6000/>6002",
		MinBanks:    2,
		MaxBanks:    2,
	},
	{
		ID:          Paged7,
		Name:        "paged7",
		Keyword:     "7",
		Description: "16K ROM switched by writing to the >7xxx range",
		MinBanks:    2,
		MaxBanks:    2,
	},
	{
		ID:          MiniMemory,
		Name:        "minimem",
		Keyword:     "minimem",
		Description: "Mini Memory: ROM with 4K of battery backed RAM at >7000",
		MinBanks:    1,
		MaxBanks:    1,
		RAM:         &AuxRAM{Size: 4096, Storage: Persistent},
	},
	{
		ID:          MBX,
		Name:        "mbx",
		Keyword:     "mbx",
		Description: "MBX: paged ROM with 1K of RAM at >6C00",
		MinBanks:    1,
		MaxBanks:    2,
		RAM:         &AuxRAM{Size: 1024, Storage: Persistent},
	},
	{
		ID:          Paged378,
		Name:        "paged378",
		Keyword:     "378",
		Description: "74LS378 latch, up to 512K, bank 0 selected at power up",
		MinBanks:    2,
		MaxBanks:    64,
	},
	{
		ID:          Paged379i,
		Name:        "paged379i",
		Keyword:     "379",
		Description: "74LS379 latch with inverted selection, up to 128K",
		MinBanks:    2,
		MaxBanks:    16,
	},
	{
		ID:          Paged377,
		Name:        "paged377",
		Keyword:     "377",
		Description: "74LS377 latch, up to 2M",
		MinBanks:    2,
		MaxBanks:    256,
	},
}

// Variants returns a copy of the list of supported board variants.
func Variants() []Variant {
	v := make([]Variant, len(variants))
	for i := range variants {
		v[i] = variants[i].clone()
	}
	return v
}

// Get returns the Variant with the specified ID. It panics if the ID is not
// valid.
func Get(id ID) Variant {
	for _, v := range variants {
		if v.ID == id {
			return v.clone()
		}
	}
	panic(fmt.Sprintf("pcb: no variant with ID %d", id))
}

// Lookup finds the Variant for an override keyword. The PCB name of the
// variant is also accepted. The comparison is case insensitive.
func Lookup(keyword string) (Variant, error) {
	k := strings.ToLower(strings.TrimSpace(keyword))
	for _, v := range variants {
		if k == v.Keyword || k == v.Name {
			return v.clone(), nil
		}
	}
	return Variant{}, curated.Errorf(UnknownVariant, keyword)
}

// Keywords returns the list of override keywords in the order of Variants().
func Keywords() []string {
	k := make([]string, 0, len(variants))
	for _, v := range variants {
		k = append(k, v.Keyword)
	}
	return k
}
