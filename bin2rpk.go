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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/bin2rpk/cartridgeloader"
	"github.com/jetsetilly/bin2rpk/curated"
	"github.com/jetsetilly/bin2rpk/layout"
	"github.com/jetsetilly/bin2rpk/logger"
	"github.com/jetsetilly/bin2rpk/modalflag"
	"github.com/jetsetilly/bin2rpk/pcb"
	"github.com/jetsetilly/bin2rpk/prefs"
	"github.com/jetsetilly/bin2rpk/publish"
	"github.com/jetsetilly/bin2rpk/rpk"
	"github.com/jetsetilly/bin2rpk/version"
)

// errors caused by the command line rather than by the cartridge
const (
	missingArgument  = "cartridge file required for %s mode"
	tooManyArguments = "too many arguments for %s mode"
	companionSize    = "companion file requires an 8K main file (%s is %d bytes)"
)

// exit values
const (
	exitArguments  = 10
	exitConversion = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("CONVERT", "CLASSIFY", "LIST", "VERSION")
	md.DescribeSubMode("CONVERT", "convert a cartridge image to an rpk archive")
	md.DescribeSubMode("CLASSIFY", "print the board selected for a cartridge image")
	md.DescribeSubMode("LIST", "list the supported boards")
	md.DescribeSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "CONVERT":
		err = convertMode(md)
	case "CLASSIFY":
		err = classifyMode(md)
	case "LIST":
		err = listMode(md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitValue(err)
	}

	return 0
}

func exitValue(err error) int {
	if curated.Is(err, missingArgument) || curated.Is(err, tooManyArguments) ||
		curated.Has(err, pcb.UnknownVariant) || curated.Has(err, prefs.PrefsError) {
		return exitArguments
	}
	return exitConversion
}

// singleArgument returns the one argument remaining after the flags
func singleArgument(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf(missingArgument, md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf(tooManyArguments, md)
}

func convertMode(md *modalflag.Modes) error {
	md.NewMode()

	var opts convertOptions
	paged := md.AddString("paged", "", fmt.Sprintf("force board type (%s)", strings.Join(pcb.Keywords(), ", ")))
	output := md.AddString("output", "", "output filename (default is the cartridge name with the .rpk extension)")
	name := md.AddString("name", "", "program name recorded in the layout (default is the cartridge name)")
	memviz := md.AddString("memviz", "", "write a graphviz description of the layout to file")
	log := md.AddBool("log", false, "echo detailed log to stdout")
	prefsStack := md.AddString("prefs", "", "preferences to apply (eg. \"output.dir::roms; s3.bucket::carts\")")
	md.AdditionalHelp("Preferences can also be set in .env files and with BIN2RPK_ environment variables.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := singleArgument(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		logger.SetDetail(true)
		defer func() {
			logger.SetEcho(nil)
			logger.SetDetail(false)
		}()
	}

	if *prefsStack != "" {
		if err := prefs.PushCommandLineStack(*prefsStack); err != nil {
			return err
		}
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	cfg, err := prefs.Load()
	if err != nil {
		return err
	}

	opts.paged = *paged
	opts.output = *output
	opts.name = *name
	opts.memviz = *memviz

	res, err := convert(filename, opts, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s: %s -> %s\n", res.loader.ShortName(), res.board, res.output)

	return nil
}

func classifyMode(md *modalflag.Modes) error {
	md.NewMode()

	paged := md.AddString("paged", "", fmt.Sprintf("force board type (%s)", strings.Join(pcb.Keywords(), ", ")))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := singleArgument(md)
	if err != nil {
		return err
	}

	cl, board, err := classify(filename, *paged)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s: %s\n", cl.Main, board)

	return nil
}

func listMode(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(tooManyArguments, md)
	}

	listBoards(md.Output)

	return nil
}

// listBoards writes the variant table and the decision table
func listBoards(w io.Writer) {
	fmt.Fprintln(w, "boards:")
	for _, v := range pcb.Variants() {
		banks := fmt.Sprintf("%d", v.MaxBanks)
		if v.MinBanks != v.MaxBanks {
			banks = fmt.Sprintf("%d..%d", v.MinBanks, v.MaxBanks)
		}
		ram := ""
		if v.RAM != nil {
			ram = fmt.Sprintf(" + %d bytes RAM", v.RAM.Size)
		}
		fmt.Fprintf(w, "  %-8s %-10s banks %-7s %s%s\n", v.Keyword, v.Name, banks, v.Description, ram)
	}

	fmt.Fprintln(w, "\nautomatic selection:")
	for _, r := range pcb.Table() {
		size := fmt.Sprintf("%dK", r.MinSize/1024)
		if r.MinSize != r.MaxSize {
			size = fmt.Sprintf("%dK..%dK", r.MinSize/1024, r.MaxSize/1024)
		}
		if r.Ambiguous {
			fmt.Fprintf(w, "  %-12s %s if image starts with % x otherwise %s\n", size,
				pcb.Get(r.Variant), r.Signature, pcb.Get(r.Alternative))
		} else {
			fmt.Fprintf(w, "  %-12s %s\n", size, pcb.Get(r.Variant))
		}
	}
}

type convertOptions struct {
	// board keyword. empty for automatic selection
	paged string

	// output filename. empty to use the default
	output string

	// program name. empty to use the short name of the cartridge
	name string

	// graphviz output filename. empty for no output
	memviz string
}

type conversion struct {
	loader cartridgeloader.Loader
	board  pcb.Board
	output string
	bundle *rpk.Bundle
}

// override returns the board to use instead of the decision table, if any.
// an explicit keyword is preferred to a companion file, which in turn is
// preferred to the hint in the filename
func override(cl cartridgeloader.Loader, paged string) (*pcb.Variant, error) {
	if paged != "" {
		v, err := pcb.Lookup(paged)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	if cl.Companion {
		if cl.MainSize != pcb.BankSize {
			return nil, curated.Errorf(companionSize, cl.Main, cl.MainSize)
		}
		logger.Logf(logger.Allow, "bin2rpk", "using %s as second bank", cl.CompanionFile)
		v := pcb.Get(pcb.Paged16k)
		return &v, nil
	}

	if len(cl.Data) > pcb.BankSize {
		if k := cartridgeloader.HintedBoard(cl.Main); k != "" {
			v, err := pcb.Lookup(k)
			if err != nil {
				return nil, err
			}
			logger.Logf(logger.Allow, "bin2rpk", "filename suggests %s board", v.Name)
			return &v, nil
		}
	}

	return nil, nil
}

// classify loads the cartridge and selects the board
func classify(filename string, paged string) (cartridgeloader.Loader, pcb.Board, error) {
	cl := cartridgeloader.NewLoader(filename)
	err := cl.Load()
	if err != nil {
		return cl, pcb.Board{}, err
	}

	v, err := override(cl, paged)
	if err != nil {
		return cl, pcb.Board{}, err
	}

	board, err := pcb.ClassifyImage(cl.Data, v)
	if err != nil {
		return cl, pcb.Board{}, err
	}

	logger.Logf(logger.Allow, "bin2rpk", "%s (%d bytes, sha1 %s): %s", cl.Main, len(cl.Data), cl.Hash, board)

	return cl, board, nil
}

// outputPath decides where the archive is written
func outputPath(cl cartridgeloader.Loader, opts convertOptions, cfg prefs.Config) string {
	if opts.output != "" {
		return opts.output
	}
	if cfg.OutputDir != "" {
		return filepath.Join(cfg.OutputDir, filepath.Base(cl.OutputName()))
	}
	return cl.OutputName()
}

// convert the cartridge and write the archive to the file sink and, if it is
// configured, to the object store
func convert(filename string, opts convertOptions, cfg prefs.Config) (conversion, error) {
	var res conversion
	var err error

	res.loader, res.board, err = classify(filename, opts.paged)
	if err != nil {
		return res, err
	}

	name := opts.name
	if name == "" {
		name = res.loader.ShortName()
	}

	if opts.memviz != "" {
		if err := writeMemviz(opts.memviz, res.board, name); err != nil {
			return res, err
		}
	}

	res.bundle, err = rpk.Emit(res.board, name, res.loader.Data)
	if err != nil {
		return res, err
	}

	res.output = outputPath(res.loader, opts, cfg)

	sinks := rpk.MultiSink{rpk.FileSink{Path: res.output}}
	if cfg.S3.Enabled() {
		s3, err := publish.NewS3Sink(cfg.S3, res.output)
		if err != nil {
			return res, err
		}
		sinks = append(sinks, s3)
	}

	if err := sinks.Write(res.bundle); err != nil {
		return res, err
	}

	return res, nil
}

func writeMemviz(filename string, board pcb.Board, name string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	layout.Visualise(f, layout.Build(board, name))
	return f.Close()
}
