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

// Package modalflag wraps the flag package from the standard library and adds
// program modes. Each mode has its own set of flags and the mode is selected by
// naming it after the flags of the previous layer. The first mode added is the
// default and is selected when no mode is named.
//
// Arguments are given to NewArgs() and then each layer is processed with
// Parse(). For example, a program with a default CONVERT mode and a LIST mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "LIST")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		output := md.AddString("output", "", "output filename")
//		...
//	}
//
// Sub-mode names are case insensitive and are always reported in upper case.
//
// A flag that is not recognised by a layer that has sub-modes causes the
// default mode to be selected. The flag is then parsed by the next layer. In
// the example above, "-output x.rpk" on the command line selects CONVERT mode
// without CONVERT being named.
package modalflag
