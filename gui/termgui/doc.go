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

// Package termgui is a terminal frontend for the sampler. The terminal is put
// into raw mode and key presses are translated to userinput events.
//
// Terminals do not report when a key is released. A key is therefore
// considered to be held for a fixed number of frames after the most recent
// press. The terminal's own key repeat keeps a held key held for as long as
// the repeat rate is faster than the hold period.
//
// Key names are the same as those used by the SDL frontend so that the same
// bindings work for both.
package termgui
