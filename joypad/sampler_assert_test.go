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

//go:build assertions

package joypad_test

import (
	"testing"

	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/test"
)

func TestTickFromWrongGoroutine(t *testing.T) {
	s := joypad.NewSampler(joypad.NewSingle(joypad.SourceFunc(func() joypad.ButtonMask {
		return joypad.NoButtons
	})))

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		s.Tick()
	}()
	test.ExpectSuccess(t, <-panicked)
}

func TestReentrantTick(t *testing.T) {
	var s *joypad.Sampler
	s = joypad.NewSampler(joypad.NewSingle(joypad.SourceFunc(func() joypad.ButtonMask {
		if s != nil {
			s.Tick()
		}
		return joypad.NoButtons
	})))

	defer func() {
		test.ExpectSuccess(t, recover() != nil)
	}()
	s.Tick()
}
