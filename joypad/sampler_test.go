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
	"math/rand/v2"
	"testing"

	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/test"
)

// hardware is a Source with a value that can be changed by the test between
// calls to Tick()
type hardware struct {
	held  joypad.ButtonMask
	reads int
}

func (h *hardware) Read() joypad.ButtonMask {
	h.reads++
	return h.held
}

func TestResetBaseline(t *testing.T) {
	hw := &hardware{}
	s := joypad.NewSampler(joypad.NewSingle(hw))

	test.ExpectEquality(t, s.State(), joypad.State{})
	test.ExpectEquality(t, s.NumPads(), 1)
	test.ExpectEquality(t, s.Frame(), 0)
	test.ExpectEquality(t, hw.reads, 0)

	hw.held = joypad.Right | joypad.A
	s.Tick()
	test.ExpectInequality(t, s.State(), joypad.State{})

	s.Reset()
	test.ExpectEquality(t, s.Current(), joypad.NoButtons)
	test.ExpectEquality(t, s.Previous(), joypad.NoButtons)
	test.ExpectEquality(t, s.Pressed(), joypad.NoButtons)
	test.ExpectEquality(t, s.RecentDirectional(), joypad.NoButtons)
	test.ExpectEquality(t, s.Frame(), 0)
}

func TestRightHeldAndReleased(t *testing.T) {
	hw := &hardware{}
	s := joypad.NewSampler(joypad.NewSingle(hw))

	// right pressed
	hw.held = 0b0000_0001
	s.Tick()
	test.ExpectEquality(t, s.State(), joypad.State{
		Current:           joypad.Right,
		Previous:          joypad.NoButtons,
		Pressed:           joypad.Right,
		RecentDirectional: joypad.Right,
	})

	// right still held. the directional latch is not cleared
	s.Tick()
	test.ExpectEquality(t, s.State(), joypad.State{
		Current:           joypad.Right,
		Previous:          joypad.Right,
		Pressed:           joypad.NoButtons,
		RecentDirectional: joypad.Right,
	})

	// right released. the D-pad has changed so the latch is recomputed and
	// a release never sets a bit
	hw.held = 0b0000_0000
	s.Tick()
	test.ExpectEquality(t, s.State(), joypad.State{
		Current:           joypad.NoButtons,
		Previous:          joypad.Right,
		Pressed:           joypad.NoButtons,
		RecentDirectional: joypad.NoButtons,
	})

	test.ExpectEquality(t, s.Frame(), 3)
	test.ExpectEquality(t, hw.reads, 3)
}

func TestLatchSurvivesButtonChanges(t *testing.T) {
	hw := &hardware{}
	s := joypad.NewSampler(joypad.NewSingle(hw))

	hw.held = joypad.Up
	s.Tick()
	test.ExpectEquality(t, s.RecentDirectional(), joypad.Up)

	// pressing A while still holding Up does not touch the D-pad
	hw.held = joypad.Up | joypad.A
	s.Tick()
	test.ExpectEquality(t, s.Pressed(), joypad.A)
	test.ExpectEquality(t, s.RecentDirectional(), joypad.Up)

	// adding Left to Up changes the D-pad. only the new bit is latched
	hw.held = joypad.Up | joypad.Left | joypad.A
	s.Tick()
	test.ExpectEquality(t, s.Pressed(), joypad.Left)
	test.ExpectEquality(t, s.RecentDirectional(), joypad.Left)

	// releasing Up changes the D-pad but presses nothing
	hw.held = joypad.Left | joypad.A
	s.Tick()
	test.ExpectEquality(t, s.Pressed(), joypad.NoButtons)
	test.ExpectEquality(t, s.RecentDirectional(), joypad.NoButtons)
}

func TestEdgeDerivation(t *testing.T) {
	hw := &hardware{}
	s := joypad.NewSampler(joypad.NewSingle(hw))

	for prev := range 256 {
		for cur := range 256 {
			s.Reset()
			hw.held = joypad.ButtonMask(prev)
			s.Tick()
			hw.held = joypad.ButtonMask(cur)
			s.Tick()

			expected := joypad.ButtonMask(cur) &^ joypad.ButtonMask(prev)
			if s.Pressed() != expected {
				t.Fatalf("pressed edge for %#02x -> %#02x is %#02x (wanted %#02x)", prev, cur, uint8(s.Pressed()), uint8(expected))
			}
			if s.Previous() != joypad.ButtonMask(prev) || s.Current() != joypad.ButtonMask(cur) {
				t.Fatalf("history for %#02x -> %#02x is %s", prev, cur, s.State())
			}
		}
	}
}

func TestDirectionalLatch(t *testing.T) {
	hw := &hardware{}
	s := joypad.NewSampler(joypad.NewSingle(hw))

	rng := rand.New(rand.NewPCG(1, 2))

	for range 10000 {
		before := s.State()

		hw.held = joypad.ButtonMask(rng.UintN(256))
		s.Tick()
		after := s.State()

		test.DemandEquality(t, after.Previous, before.Current)

		if (after.Current^after.Previous)&joypad.DirectionalMask == 0 {
			test.DemandEquality(t, after.RecentDirectional, before.RecentDirectional)
		} else {
			expected := (after.Current &^ after.Previous) & joypad.DirectionalMask
			test.DemandEquality(t, after.RecentDirectional, expected)
		}

		// released bits never appear in either edge field
		released := after.Previous &^ after.Current
		test.DemandEquality(t, after.Pressed&released, joypad.NoButtons)
		test.DemandEquality(t, after.RecentDirectional&released, joypad.NoButtons)
	}
}

func TestStateHelpers(t *testing.T) {
	st := joypad.State{
		Current: joypad.A | joypad.Down,
		Pressed: joypad.A,
	}
	test.ExpectSuccess(t, st.Held(joypad.A))
	test.ExpectSuccess(t, st.Held(joypad.Down|joypad.Up))
	test.ExpectFailure(t, st.Held(joypad.Start))
	test.ExpectSuccess(t, st.JustPressed(joypad.A))
	test.ExpectFailure(t, st.JustPressed(joypad.Down))
}
