// This file is part of dmgpad.
//
// dmgpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dmgpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dmgpad.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/dmgpad/dmgpad/joypad"
)

// readController reads all eight buttons of the controller currently
// connected to the port. The port is left with neither half of the matrix
// selected.
func readController(p *Port) joypad.ButtonMask {
	p.Write(selectDPad)
	d := ^p.Read() & inputBits

	p.Write(selectButtons)
	b := ^p.Read() & inputBits

	p.Write(selectNone)

	return joypad.ButtonMask(d | b<<4)
}

// Reader reads a single controller from the port. It implements the
// joypad.Source interface.
type Reader struct {
	port *Port
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(p *Port) *Reader {
	return &Reader{port: p}
}

// Read implements the joypad.Source interface.
func (r *Reader) Read() joypad.ButtonMask {
	return readController(r.port)
}

// MultiReader reads every controller from an SGB port in multiplayer mode. It
// implements the joypad.MultiSource interface.
//
// The number of controllers read by Poll() is the number of players the port
// is currently responding with.
type MultiReader struct {
	port *Port
}

// NewMultiReader is the preferred method of initialisation for the MultiReader
// type.
func NewMultiReader(p *Port) *MultiReader {
	return &MultiReader{port: p}
}

// Init implements the joypad.MultiSource interface.
func (r *MultiReader) Init(max int) int {
	return r.port.RequestMultiplayer(max)
}

// currentID reads the ID of the selected controller. the port must have
// neither half of the matrix selected
func (r *MultiReader) currentID() int {
	r.port.Write(selectNone)
	return int(inputBits - r.port.Read()&inputBits)
}

// Poll implements the joypad.MultiSource interface.
func (r *MultiReader) Poll(pads []joypad.ButtonMask) int {
	players := r.port.Players()
	if players <= 1 {
		if len(pads) == 0 {
			return 0
		}
		pads[0] = readController(r.port)
		return 1
	}

	// make sure the first controller read is the first controller. this can
	// be out of step if the previous poll didn't read every controller
	for range players {
		if r.currentID() == 0 {
			break // for loop
		}
		r.port.Write(selectButtons)
		r.port.Write(selectNone)
	}

	n := min(players, len(pads))
	for i := range n {
		pads[i] = readController(r.port)
	}
	return n
}
