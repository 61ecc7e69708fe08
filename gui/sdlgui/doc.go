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

// Package sdlgui is the windowed frontend. It uses SDL for the window, the
// keyboard and any attached gamepads or joysticks. Each attached device is
// assigned a controller number in the order that it was found. Removing a
// device releases its buttons, as does the window losing focus.
//
// The window shows the state of every button for each controller. A lit box
// is a held button. For the first controller, a button pressed this frame is
// shown in yellow and the most recent direction, once released, stays
// latched in blue.
//
// SDL must be serviced from the main thread. Create the GUI and call Service()
// and Render() from the main goroutine only.
package sdlgui
