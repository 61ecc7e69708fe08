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
	"fmt"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/joypad"
)

// bits in the P1 register
const (
	p14 = 0x10
	p15 = 0x20

	selectDPad    = p15
	selectButtons = p14
	selectNone    = p14 | p15
	selectMask    = p14 | p15

	unusedBits = 0xc0
	inputBits  = 0x0f
)

// Sentinal error returned when an event is for a controller that doesn't
// exist.
const UnknownController = "port: no such controller (%d)"

// Port is the emulated P1 register together with the physical state of up to
// joypad.MaxPads controllers.
//
// Port is not safe for concurrent use. The frame loop forwards user input to
// the Port and samples it on the same goroutine.
type Port struct {
	sgb bool

	// the buttons physically held on each controller
	held [joypad.MaxPads]joypad.ButtonMask

	// select lines as most recently written
	selectLines uint8

	// number of players as set by RequestMultiplayer(). always 1 for a
	// non-SGB port
	players int

	// the controller currently connected to the port in multiplayer mode
	id int
}

// NewPort is the preferred method of initialisation for the Port type. The sgb
// argument says whether the port supports the SGB multiplayer mode.
func NewPort(sgb bool) *Port {
	return &Port{
		sgb:         sgb,
		selectLines: selectNone,
		players:     1,
	}
}

func (p *Port) String() string {
	return fmt.Sprintf("P1=%#02x players=%d id=%d", p.Read(), p.players, p.id)
}

// Write the P1 register. Only the select lines are writable.
func (p *Port) Write(v uint8) {
	prev := p.selectLines
	p.selectLines = v & selectMask

	// P15 going from low to high advances the selected controller
	if p.players > 1 && prev&p15 == 0 && p.selectLines&p15 == p15 {
		p.id = (p.id + 1) % p.players
	}
}

// Read the P1 register.
func (p *Port) Read() uint8 {
	if p.players > 1 && p.selectLines == selectNone {
		return unusedBits | selectNone | (inputBits - uint8(p.id))
	}

	held := p.held[p.id]
	v := uint8(unusedBits|inputBits) | p.selectLines

	if p.selectLines&p14 == 0 {
		v &^= uint8(held & joypad.DirectionalMask)
	}
	if p.selectLines&p15 == 0 {
		v &^= uint8(held&joypad.ButtonsMask) >> 4
	}

	return v
}

// RequestMultiplayer emulates the SGB MLT_REQ command. Valid player counts are
// 1, 2 and 4. A request for 3 players results in 4. Returns the number of
// players that the port will now respond with.
//
// A port that does not support SGB always returns 1.
func (p *Port) RequestMultiplayer(n int) int {
	switch {
	case !p.sgb || n <= 1:
		p.players = 1
	case n == 2:
		p.players = 2
	default:
		p.players = 4
	}
	p.id = 0
	return p.players
}

// Players returns the number of players in the current multiplayer mode.
func (p *Port) Players() int {
	return p.players
}

// SetHeld sets the held buttons for the numbered controller.
func (p *Port) SetHeld(pad int, m joypad.ButtonMask) error {
	if pad < 0 || pad >= len(p.held) {
		return curated.Errorf(UnknownController, pad)
	}
	p.held[pad] = m
	return nil
}

// Held returns the buttons held on the numbered controller.
func (p *Port) Held(pad int) joypad.ButtonMask {
	if pad < 0 || pad >= len(p.held) {
		return joypad.NoButtons
	}
	return p.held[pad]
}

// HandleEvent implements the userinput.HandleInput interface.
func (p *Port) HandleEvent(pad int, b joypad.ButtonMask, down bool) error {
	if pad < 0 || pad >= len(p.held) {
		return curated.Errorf(UnknownController, pad)
	}
	if down {
		p.held[pad] |= b
	} else {
		p.held[pad] &^= b
	}
	return nil
}

// ReleaseAll releases every button on every controller.
func (p *Port) ReleaseAll() {
	p.held = [joypad.MaxPads]joypad.ButtonMask{}
}
