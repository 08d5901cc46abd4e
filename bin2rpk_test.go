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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/jetsetilly/bin2rpk/curated"
	"github.com/jetsetilly/bin2rpk/pcb"
	"github.com/jetsetilly/bin2rpk/prefs"
	"github.com/jetsetilly/bin2rpk/rpk"
	"github.com/jetsetilly/bin2rpk/test"
)

// image returns cartridge data of the specified number of banks. the first
// byte of the first bank is the header byte
func image(banks int, header byte) []byte {
	d := make([]byte, banks*pcb.BankSize)
	for i := range d {
		d[i] = byte(i / pcb.BankSize)
	}
	d[0] = header
	return d
}

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func archiveNames(t *testing.T, filename string) []string {
	t.Helper()
	r, err := zip.OpenReader(filename)
	test.DemandSuccess(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestConvertStandard(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "gamec.bin", image(1, 0xaa))

	res, err := convert(fn, convertOptions{}, prefs.Config{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.board.ID, pcb.Standard)
	test.ExpectEquality(t, res.output, filepath.Join(dir, "gamec.rpk"))

	names := archiveNames(t, res.output)
	test.ExpectEquality(t, strings.Join(names, ","), "layout.xml,rom0.bin,softinfo.xml")

	// the archive must not be overwritten
	_, err = convert(fn, convertOptions{}, prefs.Config{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, rpk.SinkError))
}

func TestConvertAmbiguous(t *testing.T) {
	dir := t.TempDir()

	fn := writeFile(t, dir, "game.bin", image(4, 0xaa))
	_, board, err := classify(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, board.ID, pcb.Paged378)
	test.ExpectEquality(t, board.Banks, 4)

	fn = writeFile(t, dir, "other.bin", image(4, 0x00))
	_, board, err = classify(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, board.ID, pcb.Paged379i)
}

func TestConvertOverride(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "game.bin", image(2, 0x00))

	_, board, err := classify(fn, "377")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, board.ID, pcb.Paged377)

	_, _, err = classify(fn, "standard")
	test.ExpectSuccess(t, curated.Is(err, pcb.IncompatibleOverride))

	_, _, err = classify(fn, "nonsense")
	test.ExpectSuccess(t, curated.Is(err, pcb.UnknownVariant))
}

func TestConvertHint(t *testing.T) {
	dir := t.TempDir()

	// without the hint this image would be classified as paged379i
	fn := writeFile(t, dir, "game8.bin", image(2, 0x00))
	_, board, err := classify(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, board.ID, pcb.Paged378)

	// explicit board is preferred to the hint
	_, board, err = classify(fn, "16k")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, board.ID, pcb.Paged16k)

	// the hint is ignored for 8K images
	fn = writeFile(t, dir, "small7.bin", image(1, 0xaa))
	_, board, err = classify(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, board.ID, pcb.Standard)
}

func TestConvertCompanion(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "gamec.bin", image(1, 0xaa))
	writeFile(t, dir, "gamed.bin", image(1, 0x00))

	res, err := convert(fn, convertOptions{name: "GAME"}, prefs.Config{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.board.ID, pcb.Paged16k)
	test.ExpectEquality(t, res.board.Banks, 2)

	names := archiveNames(t, res.output)
	test.ExpectEquality(t, strings.Join(names, ","), "layout.xml,rom0.bin,rom1.bin,softinfo.xml")

	// a companion file requires an 8K main file
	fn = writeFile(t, dir, "bigc.bin", image(2, 0xaa))
	writeFile(t, dir, "bigd.bin", image(1, 0x00))
	_, _, err = classify(fn, "")
	test.ExpectSuccess(t, curated.Is(err, companionSize))
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "gamec.bin", image(1, 0xaa))
	out := filepath.Join(dir, "out")
	test.DemandSuccess(t, os.Mkdir(out, 0o755))

	res, err := convert(fn, convertOptions{}, prefs.Config{OutputDir: out})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.output, filepath.Join(out, "gamec.rpk"))

	explicit := filepath.Join(dir, "explicit.rpk")
	res, err = convert(fn, convertOptions{output: explicit}, prefs.Config{OutputDir: out})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.output, explicit)

	_, err = os.Stat(explicit)
	test.ExpectSuccess(t, err)
}

func TestMemviz(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "gamec.bin", image(1, 0xaa))
	dot := filepath.Join(dir, "layout.dot")

	_, err := convert(fn, convertOptions{memviz: dot}, prefs.Config{})
	test.DemandSuccess(t, err)

	d, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestLaunch(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "gamec.bin", image(1, 0xaa))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{}, tw), exitArguments)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "* error in CONVERT mode"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-paged", "nonsense", fn}, tw), exitArguments)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-prefs", "nonsense::value", fn}, tw), exitArguments)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "unknown preference (nonsense)"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"CLASSIFY", fn}, tw), 0)
	test.ExpectEquality(t, tw.String(), "gamec.bin: standard (1 bank)\n")

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"CLASSIFY", "-paged", "378", fn}, tw), exitConversion)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"list"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "paged379i"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"VERSION"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "bin2rpk "))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-log", "-output", filepath.Join(dir, "x.rpk"), fn}, tw), 0)
	_, err := os.Stat(filepath.Join(dir, "x.rpk"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "loader: loading "))
}
