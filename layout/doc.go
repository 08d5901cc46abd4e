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

// Package layout builds and serialises the layout description of an rpk
// archive. The layout description tells the emulator which board the
// cartridge uses and which file in the archive is plugged into each of the
// board's sockets.
//
// An example layout for a two bank cartridge:
//
//	<?xml version='1.0' encoding='utf-8'?>
//	<romset version="1.0" name="Parsec">
//	   <resources>
//	      <rom id="romimage" file="rom0.bin" />
//	      <rom id="rom2image" file="rom1.bin" />
//	   </resources>
//	   <configuration>
//	      <pcb type="paged378">
//	         <socket id="rom_socket" uses="romimage" />
//	         <socket id="rom2_socket" uses="rom2image" />
//	      </pcb>
//	   </configuration>
//	</romset>
//
// The serialised form is stable. The same Layout always produces the same
// bytes.
package layout
