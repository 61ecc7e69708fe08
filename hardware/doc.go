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

// Package hardware emulates the Game Boy joypad port. It is the hardware
// input boundary for the joypad.Sampler.
//
// The joypad port is the P1 register (sometimes called JOYP) at address
// 0xff00. The eight buttons are arranged in a 2x4 matrix and the program
// selects which half of the matrix it wants to read by pulling one of the two
// select lines low:
//
//	bit 5   P15 select action buttons (0 = selected)
//	bit 4   P14 select D-pad (0 = selected)
//	bit 3   P13 Down  or Start  (0 = pressed)
//	bit 2   P12 Up    or Select (0 = pressed)
//	bit 1   P11 Left  or B      (0 = pressed)
//	bit 0   P10 Right or A      (0 = pressed)
//
// Bits 6 and 7 are unused and always read as 1.
//
// The Super Game Boy extends the port with a multiplayer mode, requested with
// the MLT_REQ command. In this mode, reading the port with both select lines
// high returns the ID of the currently selected controller in the lower
// nibble (0xf for the first controller, 0xe for the second, etc.) and the
// selected controller advances every time P15 goes from low to high.
//
// The Reader and MultiReader types read the port in the same way as the GBDK
// joypad() and joypad_ex() functions and implement the joypad.Source and
// joypad.MultiSource interfaces respectively.
package hardware
