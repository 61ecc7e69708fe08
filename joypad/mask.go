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

package joypad

import (
	"strconv"
	"strings"

	"github.com/dmgpad/dmgpad/curated"
)

// ButtonMask has one bit for each of the eight buttons on the controller. A
// set bit means the button is held.
type ButtonMask uint8

// List of buttons. The layout is the same as the GBDK J_* constants, with the
// D-pad in the lower nibble.
const (
	Right  ButtonMask = 0x01
	Left   ButtonMask = 0x02
	Up     ButtonMask = 0x04
	Down   ButtonMask = 0x08
	A      ButtonMask = 0x10
	B      ButtonMask = 0x20
	Select ButtonMask = 0x40
	Start  ButtonMask = 0x80
)

// NoButtons is the empty mask.
const NoButtons ButtonMask = 0x00

// DirectionalMask selects only the four D-pad bits.
const DirectionalMask = Right | Left | Up | Down

// ButtonsMask selects only the four action buttons.
const ButtonsMask = A | B | Select | Start

var buttonNames = [...]struct {
	mask ButtonMask
	name string
}{
	{Right, "Right"},
	{Left, "Left"},
	{Up, "Up"},
	{Down, "Down"},
	{A, "A"},
	{B, "B"},
	{Select, "Select"},
	{Start, "Start"},
}

func (m ButtonMask) String() string {
	if m == NoButtons {
		return "-"
	}

	s := strings.Builder{}
	for _, b := range buttonNames {
		if m&b.mask == b.mask {
			if s.Len() > 0 {
				s.WriteRune('|')
			}
			s.WriteString(b.name)
		}
	}
	return s.String()
}

// Directional returns only the D-pad bits of the mask.
func (m ButtonMask) Directional() ButtonMask {
	return m & DirectionalMask
}

// Sentinal error returned by ParseButtonMask().
const UnknownButton = "joypad: unknown button (%s)"

// ParseButtonMask converts a string to a ButtonMask. The string can be a list
// of button names separated by '|' or '+' (case insensitive) or a numeric
// literal. The strings "-" and "" are both NoButtons.
func ParseButtonMask(s string) (ButtonMask, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return NoButtons, nil
	}

	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		return ButtonMask(n), nil
	}

	var m ButtonMask

	f := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == '+'
	})

	for _, n := range f {
		n = strings.TrimSpace(n)
		found := false
		for _, b := range buttonNames {
			if strings.EqualFold(n, b.name) {
				m |= b.mask
				found = true
				break // for loop
			}
		}
		if !found {
			return NoButtons, curated.Errorf(UnknownButton, n)
		}
	}

	return m, nil
}
