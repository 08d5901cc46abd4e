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

// Package cartridgeloader is used to load cartridge images from disk, from
// inside a zip archive or from a http(s) URL.
//
// TI-99/4A cartridge dumps traditionally use the last letter of the filename
// (before the .bin extension) to indicate what the file contains:
//
//	parsecc.bin		CPU ROM
//	parsecd.bin		second CPU ROM bank for the two chip paged board
//	parsecg.bin		GROM
//
// The Loader looks for the "d" companion of a "c" file and, if it exists,
// appends it to the image. GROM files are not supported.
//
// Some dumps of paged cartridges also use the character before the extension
// as a hint for the type of bank switching. See the Hint() function.
package cartridgeloader
