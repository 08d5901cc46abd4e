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

// Package logger is the central log for the application. Log entries have a
// tag and a detail string. The tag identifies the part of the program making
// the entry and is usually the package name.
//
//	logger.Log(logger.Detail, "loader", "loading cartridge")
//	logger.Logf(logger.Allow, "rpk", "written %s", filename)
//
// The permission decides whether the entry is made. Entries with the Allow
// permission are always made. Entries with the Detail permission are only
// made after SetDetail(true).
//
// Consecutive entries that are identical are collapsed into a single entry
// with a repeat count.
//
// Log entries are not printed unless SetEcho() has been called with a non-nil
// io.Writer. The entries are always kept however and can be written later
// with Write() or Tail().
//
// The classification and layout packages (pcb and layout) do not log.
// Logging is the responsibility of the sinks, the loader and the command line
// tool.
package logger
