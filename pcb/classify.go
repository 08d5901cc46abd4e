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
	"bytes"
	"fmt"

	"github.com/jetsetilly/bin2rpk/curated"
)

// Probe returns count bytes of the image starting at offset. If the image is
// too short the returned slice will be shorter than count.
type Probe func(offset int, count int) []byte

// ImageProbe returns a Probe over the image data.
func ImageProbe(data []byte) Probe {
	return func(offset int, count int) []byte {
		if offset < 0 || offset >= len(data) {
			return nil
		}
		end := offset + count
		if end > len(data) {
			end = len(data)
		}
		return data[offset:end]
	}
}

// Board is the result of a classification.
type Board struct {
	Variant

	// the number of banks in the image
	Banks int
}

func (b Board) String() string {
	if b.Banks == 1 {
		return fmt.Sprintf("%s (1 bank)", b.Name)
	}
	return fmt.Sprintf("%s (%d banks)", b.Name, b.Banks)
}

// the TI-99/4A cartridge header begins with the "valid" byte. the console
// searches for it at >6000 and so a paged image has it at the beginning of the
// bank that is visible at power up
const (
	headerOffset = 0
	headerValid  = 0xaa
)

var headerSignature = []byte{headerValid}

// Rule is an entry in the decision table used by Classify().
type Rule struct {
	// range of image sizes (inclusive) that the rule applies to
	MinSize int
	MaxSize int

	// the variant selected by the rule. if the rule is ambiguous then this is
	// the variant selected when the probe matches the signature
	Variant ID

	// the variant selected when the probe does not match the signature.
	// only meaningful if Ambiguous is true
	Alternative ID
	Ambiguous   bool

	// location and content of the signature that resolves an ambiguous rule
	ProbeOffset int
	Signature   []byte
}

// resolve the rule for the image
func (r Rule) resolve(probe Probe) ID {
	if !r.Ambiguous {
		return r.Variant
	}
	if probe != nil && bytes.Equal(probe(r.ProbeOffset, len(r.Signature)), r.Signature) {
		return r.Variant
	}
	return r.Alternative
}

// the rules are checked in order. the first rule that covers the image size
// is used
var table = []Rule{
	{
		MinSize: BankSize,
		MaxSize: BankSize,
		Variant: Standard,
	},
	{
		// images up to 128K might be for either the 378 or the 379i board.
		// the two boards are identical except for the bank that is visible
		// at power up: bank zero for the 378 and the last bank for the 379i.
		// the only way to tell them apart is to look for the cartridge header
		// at the start of the image
		MinSize:     2 * BankSize,
		MaxSize:     16 * BankSize,
		Variant:     Paged378,
		Alternative: Paged379i,
		Ambiguous:   true,
		ProbeOffset: headerOffset,
		Signature:   headerSignature,
	},
	{
		MinSize: 17 * BankSize,
		MaxSize: 64 * BankSize,
		Variant: Paged378,
	},
	{
		MinSize: 65 * BankSize,
		MaxSize: 256 * BankSize,
		Variant: Paged377,
	},
}

// Table returns a copy of the decision table used by Classify().
func Table() []Rule {
	t := make([]Rule, len(table))
	for i, r := range table {
		r.Signature = bytes.Clone(r.Signature)
		t[i] = r
	}
	return t
}

// Classify selects the board for an image of the specified length.
//
// If override is not nil then the variant is checked against the length of
// the image and returned without consulting the decision table. The probe
// function is only called if the length of the image is in the ambiguous size
// class.
func Classify(length int, override *Variant, probe Probe) (Board, error) {
	if length <= 0 || length%BankSize != 0 {
		return Board{}, curated.Errorf(InvalidImageSize, length)
	}

	banks := length / BankSize

	if override != nil {
		if !override.accepts(banks) {
			return Board{}, curated.Errorf(IncompatibleOverride, override.Name, length)
		}
		return Board{Variant: *override, Banks: banks}, nil
	}

	for _, r := range table {
		if length >= r.MinSize && length <= r.MaxSize {
			v := Get(r.resolve(probe))
			if !v.accepts(banks) {
				panic(fmt.Sprintf("pcb: decision table selects %s for %d banks", v.Name, banks))
			}
			return Board{Variant: v, Banks: banks}, nil
		}
	}

	return Board{}, curated.Errorf(UnsupportedImageSize, length)
}

// ClassifyImage is a convenience function that classifies the image data.
func ClassifyImage(data []byte, override *Variant) (Board, error) {
	return Classify(len(data), override, ImageProbe(data))
}
