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

package layout

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a graphviz description of the layout tree to w. Useful
// for checking the structure of a layout without reading the XML.
func Visualise(w io.Writer, l *Layout) {
	memviz.Map(w, l.root)
}
