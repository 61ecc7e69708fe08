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
	"github.com/dmgpad/dmgpad/assert"
)

// Sampler owns the published State and updates it once per frame.
type Sampler struct {
	ctrl Controller

	state State

	// the sampled value of every controller in the most recent Tick(). pads[0]
	// is always the same as state.Current
	pads    [MaxPads]ButtonMask
	numPads int

	// number of calls to Tick() since the last Reset()
	frame int

	// the goroutine that called Reset(). only used when assertions are enabled
	owner uint64

	// Tick() is in progress. only used when assertions are enabled
	ticking bool
}

// NewSampler is the preferred method of initialisation for the Sampler type.
// The returned Sampler has already been Reset().
func NewSampler(ctrl Controller) *Sampler {
	s := &Sampler{ctrl: ctrl}
	s.Reset()
	return s
}

// Reset zeroes the State and prepares the controller hardware. Must be called
// by the goroutine that will be calling Tick().
func (s *Sampler) Reset() {
	s.state = State{}
	s.pads = [MaxPads]ButtonMask{}
	s.frame = 0
	// the Controller interface is open to other implementations so the number
	// of pads is not trusted
	s.numPads = clamp(s.ctrl.Reset(), 1, MaxPads)
	if assert.Enabled {
		s.owner = assert.GoroutineID()
	}
}

// Tick samples the controller hardware and updates the State. It must be
// called exactly once per frame. Calling it twice in the same frame will be
// seen as two frames.
func (s *Sampler) Tick() {
	if assert.Enabled {
		assert.SameGoroutine(s.owner, "joypad.Sampler.Tick()")
		assert.Check(!s.ticking, "joypad.Sampler.Tick() is not reentrant")
		s.ticking = true
		defer func() {
			s.ticking = false
		}()
	}

	s.state.Previous = s.state.Current

	n := s.ctrl.Sample(s.pads[:s.numPads])

	// controllers that did not respond are treated as having nothing held
	for i := n; i < len(s.pads); i++ {
		s.pads[i] = NoButtons
	}

	s.state.Current = s.pads[0]

	// the directional latch is only updated when the D-pad has changed
	if (s.state.Current^s.state.Previous)&DirectionalMask != 0 {
		s.state.RecentDirectional = (s.state.Current &^ s.state.Previous) & DirectionalMask
	}

	s.state.Pressed = s.state.Current &^ s.state.Previous

	s.frame++
}

// State returns a copy of the most recent State.
func (s *Sampler) State() State {
	return s.state
}

// Current returns the buttons held in the current frame.
func (s *Sampler) Current() ButtonMask {
	return s.state.Current
}

// Previous returns the buttons held in the previous frame.
func (s *Sampler) Previous() ButtonMask {
	return s.state.Previous
}

// Pressed returns the buttons that are held this frame but were not held in
// the previous frame.
func (s *Sampler) Pressed() ButtonMask {
	return s.state.Pressed
}

// RecentDirectional returns the most recent D-pad press. See the package
// documentation for the latching behaviour.
func (s *Sampler) RecentDirectional() ButtonMask {
	return s.state.RecentDirectional
}

// NumPads returns the number of logical controllers.
func (s *Sampler) NumPads() int {
	return s.numPads
}

// Pad returns the buttons held on the numbered controller in the current
// frame. Pad(0) is the same as Current(). Controllers out of range return
// NoButtons.
func (s *Sampler) Pad(i int) ButtonMask {
	if i < 0 || i >= s.numPads {
		return NoButtons
	}
	return s.pads[i]
}

// Frame returns the number of frames since the last Reset().
func (s *Sampler) Frame() int {
	return s.frame
}

// Mode returns the mode of the Controller in use.
func (s *Sampler) Mode() Mode {
	return s.ctrl.Mode()
}
