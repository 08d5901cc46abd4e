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

package rpk

// Sentinel error patterns. Test for them with curated.Is() or curated.Has().
const (
	// an invariant guaranteed by the pcb package has been broken. this
	// indicates a bug and not bad input
	InternalConsistency = "rpk: internal consistency: %s"

	// a sink could not store the archive
	SinkError = "rpk: sink: %v"
)
