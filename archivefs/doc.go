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

// Package archivefs allows files inside zip archives to be addressed as
// though the archive was a directory. For example:
//
//	games/parsec.zip/parsecc.bin
//
// The Path type is used to navigate paths of this kind. The Open() and
// ReadFile() functions are convenience functions for the most common uses.
package archivefs
