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

package rpk_test

import (
	"bytes"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/jetsetilly/bin2rpk/curated"
	"github.com/jetsetilly/bin2rpk/layout"
	"github.com/jetsetilly/bin2rpk/pcb"
	"github.com/jetsetilly/bin2rpk/rpk"
	"github.com/jetsetilly/bin2rpk/test"
)

// image where every byte identifies the bank it is in
func bankedImage(banks int) []byte {
	d := make([]byte, banks*pcb.BankSize)
	for i := range d {
		d[i] = byte(i / pcb.BankSize)
	}
	d[0] = 0xaa
	return d
}

func randomImage(banks int) []byte {
	d := make([]byte, banks*pcb.BankSize)
	r := rand.New(rand.NewPCG(1, 2))
	for i := range d {
		d[i] = byte(r.IntN(256))
	}
	return d
}

func TestSplitBanks(t *testing.T) {
	img := randomImage(8)
	banks, err := rpk.SplitBanks(img, 8, pcb.BankSize)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(banks), 8)

	// concatenating the banks in order reproduces the image
	var joined []byte
	for _, b := range banks {
		test.ExpectEquality(t, len(b), pcb.BankSize)
		joined = append(joined, b...)
	}
	test.ExpectSuccess(t, bytes.Equal(joined, img))

	// appending to a bank does not disturb the next bank
	before := banks[1][0]
	_ = append(banks[0], 0xff)
	test.ExpectEquality(t, banks[1][0], before)
	test.ExpectEquality(t, img[pcb.BankSize], before)
}

func TestSplitBanksRemainder(t *testing.T) {
	_, err := rpk.SplitBanks(make([]byte, pcb.BankSize+1), 1, pcb.BankSize)
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))

	_, err = rpk.SplitBanks(make([]byte, 2*pcb.BankSize), 3, pcb.BankSize)
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))

	_, err = rpk.SplitBanks(make([]byte, 2*pcb.BankSize), 0, pcb.BankSize)
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))
}

func TestEmitStandard(t *testing.T) {
	img := bankedImage(1)
	board, err := pcb.ClassifyImage(img, nil)
	test.DemandSuccess(t, err)

	bundle, err := rpk.Emit(board, "standard", img)
	test.DemandSuccess(t, err)

	names := bundle.Names()
	test.DemandEquality(t, len(names), 3)
	test.ExpectEquality(t, names[0], layout.Filename)
	test.ExpectEquality(t, names[1], "rom0.bin")
	test.ExpectEquality(t, names[2], rpk.MetadataFilename)

	d, ok := bundle.Get("rom0.bin")
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, bytes.Equal(d, img))

	x, ok := bundle.Get(layout.Filename)
	test.DemandSuccess(t, ok)
	test.ExpectFailure(t, bytes.Contains(x, []byte("ram")))

	m, ok := bundle.Get(rpk.MetadataFilename)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, bytes.Equal(m, rpk.Metadata()))

	test.ExpectEquality(t, bundle.Size(), len(x)+len(img)+len(m))
}

func TestEmitPaged(t *testing.T) {
	img := bankedImage(2)
	board, err := pcb.ClassifyImage(img, nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, board.Banks, 2)

	bundle, err := rpk.Emit(board, "paged", img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(bundle.Entries()), 4)

	// the bank files are in address order
	for b := 0; b < 2; b++ {
		d, ok := bundle.Get(layout.BankFilename(b))
		test.DemandSuccess(t, ok, b)
		test.ExpectEquality(t, len(d), pcb.BankSize, b)
		test.ExpectEquality(t, d[1], byte(b), b)
	}

	x, _ := bundle.Get(layout.Filename)
	test.ExpectSuccess(t, bytes.Contains(x, []byte(`<socket id="rom_socket" uses="romimage" />`)))
	test.ExpectSuccess(t, bytes.Contains(x, []byte(`<socket id="rom2_socket" uses="rom2image" />`)))
	test.ExpectSuccess(t, bytes.Contains(x, []byte(`<rom id="romimage" file="rom0.bin" />`)))
	test.ExpectSuccess(t, bytes.Contains(x, []byte(`<rom id="rom2image" file="rom1.bin" />`)))
}

func TestEmitRAM(t *testing.T) {
	v := pcb.Get(pcb.MiniMemory)
	img := bankedImage(1)
	board, err := pcb.ClassifyImage(img, &v)
	test.DemandSuccess(t, err)

	bundle, err := rpk.Emit(board, "minimem", img)
	test.DemandSuccess(t, err)

	// no file for the ram socket
	test.ExpectEquality(t, len(bundle.Entries()), 3)
	x, _ := bundle.Get(layout.Filename)
	test.ExpectEquality(t, bytes.Count(x, []byte("<ram ")), 1)
	test.ExpectEquality(t, bytes.Count(x, []byte(`id="ram_socket"`)), 1)
}

func TestEmitUnrepresentableName(t *testing.T) {
	img := bankedImage(1)
	board, err := pcb.ClassifyImage(img, nil)
	test.DemandSuccess(t, err)

	bundle, err := rpk.Emit(board, "bad\x02name", img)
	test.ExpectSuccess(t, curated.Is(err, layout.UnrepresentableName))
	test.ExpectSuccess(t, bundle == nil)

	// nothing is written by a sink if there is no bundle
	pth := filepath.Join(t.TempDir(), "bad.rpk")
	if bundle != nil {
		_ = rpk.FileSink{Path: pth}.Write(bundle)
	}
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestEmitMismatch(t *testing.T) {
	// a board that does not match the image is a programming error
	board := pcb.Board{Variant: pcb.Get(pcb.Paged378), Banks: 4}
	_, err := rpk.Emit(board, "mismatch", bankedImage(2))
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))
}

func TestIdempotence(t *testing.T) {
	img := randomImage(16)
	img[0] = 0xaa
	board, err := pcb.ClassifyImage(img, nil)
	test.DemandSuccess(t, err)

	a, err := rpk.Emit(board, "idempotent", img)
	test.DemandSuccess(t, err)
	b, err := rpk.Emit(board, "idempotent", img)
	test.DemandSuccess(t, err)

	ae := a.Entries()
	be := b.Entries()
	test.DemandEquality(t, len(ae), len(be))
	for i := range ae {
		test.ExpectEquality(t, ae[i].Name, be[i].Name)
		test.ExpectSuccess(t, bytes.Equal(ae[i].Data, be[i].Data), ae[i].Name)
	}

	// the encoded archives are identical too
	aw := &bytes.Buffer{}
	bw := &bytes.Buffer{}
	test.DemandSuccess(t, rpk.Encode(a, aw))
	test.DemandSuccess(t, rpk.Encode(b, bw))
	test.ExpectSuccess(t, bytes.Equal(aw.Bytes(), bw.Bytes()))
}

func TestEncode(t *testing.T) {
	img := bankedImage(4)
	board, err := pcb.ClassifyImage(img, nil)
	test.DemandSuccess(t, err)
	bundle, err := rpk.Emit(board, "encode", img)
	test.DemandSuccess(t, err)

	w := &bytes.Buffer{}
	test.DemandSuccess(t, rpk.Encode(bundle, w))

	zr, err := zip.NewReader(bytes.NewReader(w.Bytes()), int64(w.Len()))
	test.DemandSuccess(t, err)

	entries := bundle.Entries()
	test.DemandEquality(t, len(zr.File), len(entries))
	for i, f := range zr.File {
		test.ExpectEquality(t, f.Name, entries[i].Name)
		test.ExpectEquality(t, f.Method, zip.Deflate)

		r, err := f.Open()
		test.DemandSuccess(t, err)
		d, err := io.ReadAll(r)
		r.Close()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, bytes.Equal(d, entries[i].Data), f.Name)
	}
}

func TestAssemble(t *testing.T) {
	_, err := rpk.Assemble([]byte("x"), []string{"rom0.bin"}, nil)
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))

	_, err = rpk.Assemble([]byte("x"), []string{"rom0.bin", "rom0.bin"}, [][]byte{{0}, {1}})
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))

	for _, n := range []string{`dir\rom0.bin`, "/rom0.bin", "../rom0.bin", "a//b", ""} {
		_, err = rpk.Assemble([]byte("x"), []string{n}, [][]byte{{0}})
		test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency), n)
	}

	b, err := rpk.Assemble([]byte("x"), []string{"roms/rom0.bin"}, [][]byte{{0}})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b.Names()), 3)
}

func TestBuilder(t *testing.T) {
	var bld rpk.Builder
	_, err := bld.Bundle()
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))

	bld = rpk.Builder{}
	bld.Add("a", []byte{1})
	bld.Add("a", []byte{2})
	bld.Add("b", []byte{3})
	_, err = bld.Bundle()
	test.ExpectSuccess(t, curated.Is(err, rpk.InternalConsistency))

	// the bundle's entry list cannot be changed through Entries()
	bld = rpk.Builder{}
	bld.Add("a", []byte{1})
	b, err := bld.Bundle()
	test.DemandSuccess(t, err)
	e := b.Entries()
	e[0].Name = "changed"
	test.ExpectEquality(t, b.Names()[0], "a")
}
