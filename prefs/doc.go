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

// Package prefs resolves the configuration of the application. Values are
// taken from, in increasing order of precedence:
//
//  1. built-in defaults
//  2. a .env or bin2rpk.env file in the current directory
//  3. the process environment
//  4. the command line prefs string (see PushCommandLineStack())
//
// Environment variables are named after the preference key, upper-cased with
// dots replaced by underscores and with a BIN2RPK_ prefix. For example the
// s3.bucket preference can be set with BIN2RPK_S3_BUCKET.
package prefs
