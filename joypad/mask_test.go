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

package joypad_test

import (
	"testing"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/test"
)

func TestMaskString(t *testing.T) {
	test.ExpectEquality(t, joypad.NoButtons.String(), "-")
	test.ExpectEquality(t, joypad.Right.String(), "Right")
	test.ExpectEquality(t, (joypad.A | joypad.Right).String(), "Right|A")
	test.ExpectEquality(t, joypad.DirectionalMask.String(), "Right|Left|Up|Down")
	test.ExpectEquality(t, joypad.ButtonMask(0xff).String(), "Right|Left|Up|Down|A|B|Select|Start")
}

func TestMaskDirectional(t *testing.T) {
	test.ExpectEquality(t, joypad.DirectionalMask, joypad.ButtonMask(0x0f))
	test.ExpectEquality(t, joypad.ButtonsMask, joypad.ButtonMask(0xf0))
	test.ExpectEquality(t, (joypad.Up | joypad.Start).Directional(), joypad.Up)
}

func TestParseButtonMask(t *testing.T) {
	for i := range 256 {
		m := joypad.ButtonMask(i)
		p, err := joypad.ParseButtonMask(m.String())
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, p, m)
	}

	m, err := joypad.ParseButtonMask("a + start")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, joypad.A|joypad.Start)

	m, err = joypad.ParseButtonMask("0x11")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, joypad.Right|joypad.A)

	m, err = joypad.ParseButtonMask("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, joypad.NoButtons)

	_, err = joypad.ParseButtonMask("Right|Turbo")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, joypad.UnknownButton))
}
