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

package playmode

import (
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/logger"
)

// logTransitions logs the buttons pressed and released on every controller
// since the previous frame.
func (s *Session) logTransitions() {
	for i := range s.sampler.NumPads() {
		cur := s.sampler.Pad(i)
		prev := s.lastPads[i]
		s.lastPads[i] = cur

		if pressed := cur &^ prev; pressed != joypad.NoButtons {
			logger.Logf(s.env, "input", "frame %d: pad %d pressed %s", s.sampler.Frame(), i, pressed)
		}
		if released := prev &^ cur; released != joypad.NoButtons {
			logger.Logf(s.env, "input", "frame %d: pad %d released %s", s.sampler.Frame(), i, released)
		}
	}

	// the latch changes less often than the buttons. only log it when it does
	if dir := s.sampler.RecentDirectional(); dir != s.lastDir {
		s.lastDir = dir
		logger.Logf(s.env, "input", "frame %d: direction %s", s.sampler.Frame(), dir)
	}
}
