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

package main_test

import (
	"testing"

	"github.com/dmgpad/dmgpad/hardware"
	"github.com/dmgpad/dmgpad/joypad"
)

func BenchmarkSingle(b *testing.B) {
	port := hardware.NewPort(false)
	s := joypad.NewSampler(joypad.NewSingle(hardware.NewReader(port)))

	for i := 0; i < b.N; i++ {
		_ = port.SetHeld(0, joypad.ButtonMask(i))
		s.Tick()
	}
}

func BenchmarkMulti(b *testing.B) {
	port := hardware.NewPort(true)
	s := joypad.NewSampler(joypad.NewMulti(hardware.NewMultiReader(port), joypad.MaxPads))

	for i := 0; i < b.N; i++ {
		_ = port.SetHeld(i%joypad.MaxPads, joypad.ButtonMask(i))
		s.Tick()
	}
}
