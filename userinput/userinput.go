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

package userinput

import "github.com/dmgpad/dmgpad/joypad"

// HandleInput conceptualises data being sent to the joypad port.
type HandleInput interface {
	// HandleEvent presses or releases the buttons in the mask on the numbered
	// controller.
	HandleEvent(pad int, b joypad.ButtonMask, down bool) error
}
