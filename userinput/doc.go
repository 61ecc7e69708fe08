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

// Package userinput handles input from real hardware that the user is using to
// control the emulated joypad port.
//
// It can be thought of as a translation layer between the GUI implementation
// and the hardware package. As such, this package attempts to hide details of
// the GUI implementation while protecting the hardware package from
// complication.
//
// Keyboard keys are mapped to controller buttons with Bindings. The default
// bindings are:
//
//	pad 0: arrow keys, X (A), Z (B), Return (Start), Backspace (Select)
//	pad 1: W A S D, G (A), F (B), T (Start), R (Select)
//
// Bindings can be changed with a string of the form "key=pad:button; ...",
// see ParseBindings().
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. Key names are the names given by SDL's
// GetKeyName() function.
package userinput
