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
	"github.com/dmgpad/dmgpad/logger"
	"github.com/dmgpad/dmgpad/userinput"
)

// hotkey handles keyboard events that were not consumed by the controllers.
// events other than keyboard events are ignored.
func (s *Session) hotkey(ev userinput.Event) {
	kev, ok := ev.(userinput.EventKeyboard)
	if !ok || !kev.Down || kev.Repeat {
		return
	}

	switch kev.Key {
	case "Tab":
		s.fpsCap = !s.fpsCap
		if s.fpsCap {
			s.lim.restart()
			logger.Log(logger.Allow, "playmode", "frame rate capped")
		} else {
			logger.Log(logger.Allow, "playmode", "frame rate uncapped")
		}
	}
}
