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

package logger

import "sync/atomic"

// Permission decides whether a log request creates an entry. The decision is
// made at the time of the request.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the permission for entries that should always be made, such as
// the name of a file that has been written.
var Allow Permission = allow{}

type detail struct {
	enabled atomic.Bool
}

func (d *detail) AllowLogging() bool {
	return d.enabled.Load()
}

var detailPerm = &detail{}

// Detail is the permission for step by step entries, such as every file read
// while loading a cartridge. These entries are only made after a call to
// SetDetail(true).
var Detail Permission = detailPerm

// SetDetail turns entries made with the Detail permission on or off.
func SetDetail(enabled bool) {
	detailPerm.enabled.Store(enabled)
}
