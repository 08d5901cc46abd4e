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

// Package paths prepares paths to bin2rpk resources, such as the user's
// preferences file.
//
// If the directory ".bin2rpk" exists in the current directory then resources
// are found there. Otherwise the user's config directory, as reported by
// os.UserConfigDir(), is used. On a Linux system the following:
//
//	paths.ResourcePath("bin2rpk.env")
//
// returns "/home/user/.config/bin2rpk/bin2rpk.env".
package paths
